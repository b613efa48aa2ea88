package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fileorg/internal/model"
	"fileorg/internal/service"
)

type MockOrganizerService struct {
	mock.Mock
}

func (m *MockOrganizerService) Scan(ctx context.Context, dir string, key model.SortKey) (*service.Snapshot, error) {
	args := m.Called(ctx, dir, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Snapshot), args.Error(1)
}

func (m *MockOrganizerService) Plan(ctx context.Context, snap *service.Snapshot, s model.Strategy, overrides map[string]string) (*service.Plan, error) {
	args := m.Called(ctx, snap, s, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Plan), args.Error(1)
}

func (m *MockOrganizerService) Analyze(ctx context.Context, dir string, s model.Strategy, key model.SortKey, overrides map[string]string) (*service.Plan, error) {
	args := m.Called(ctx, dir, s, key, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Plan), args.Error(1)
}

func (m *MockOrganizerService) Organize(ctx context.Context, plan *service.Plan) (*service.Result, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Result), args.Error(1)
}

func (m *MockOrganizerService) Suggest(r model.FileRecord) string {
	return m.Called(r).String(0)
}

func (m *MockOrganizerService) AIEnabled() bool {
	return m.Called().Bool(0)
}
