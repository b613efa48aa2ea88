package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fileorg/internal/ai"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, img *ai.Image) (string, error) {
	args := m.Called(ctx, prompt, img)
	return args.String(0), args.Error(1)
}
