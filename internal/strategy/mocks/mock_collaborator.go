package mocks

import (
	"context"

	"fileorg/internal/strategy"

	"github.com/stretchr/testify/mock"
)

type MockCollaborator struct {
	mock.Mock
}

func (m *MockCollaborator) Describe(ctx context.Context, in strategy.FileInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborator) SuggestCategories(ctx context.Context, descriptions []string) ([]string, error) {
	args := m.Called(ctx, descriptions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCollaborator) PickCategory(ctx context.Context, description string, candidates []string) (string, error) {
	args := m.Called(ctx, description, candidates)
	return args.String(0), args.Error(1)
}
