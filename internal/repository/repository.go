// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"errors"

	"fileorg/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// RunRepository persists executed organization runs. It holds no business
// logic; callers build complete Run values.
type RunRepository interface {
	// Create stores run and its entries atomically and returns the stored
	// run with database-assigned values filled in.
	Create(ctx context.Context, run *model.Run) (*model.Run, error)

	// FindByID returns a run with its entries in original order.
	FindByID(ctx context.Context, id string) (*model.Run, error)

	// List returns runs newest first, without entries, plus the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Run], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
