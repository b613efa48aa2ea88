package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fileorg/internal/model"
	"fileorg/internal/repository"
	repoMocks "fileorg/internal/repository/mocks"
	storeMocks "fileorg/internal/storage/mocks"
)

func TestHistoryService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockRunRepository)
		wantErr    bool
		wantTotal  int
	}{
		{
			name:  "happy path",
			limit: 5,
			setupMocks: func(mRepo *repoMocks.MockRunRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 5, Offset: 0}).
					Return(&repository.PageResult[model.Run]{Items: []model.Run{{ID: "1"}, {ID: "2"}}, Total: 2}, nil)
			},
			wantTotal: 2,
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockRunRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Run]{Items: []model.Run{}}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockRunRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRunRepository)
			tt.setupMocks(mRepo)

			res, err := NewHistoryService(mRepo, nil).List(ctx, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.Total)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRunRepository)
	mRepo.On("FindByID", ctx, "run-1").Return(&model.Run{ID: "run-1"}, nil)
	mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)
	svc := NewHistoryService(mRepo, nil)

	run, err := svc.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)

	_, err = NewHistoryService(nil, nil).Get(ctx, "run-1")
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestHistoryService_ReportURL(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRunRepository)
	mRepo.On("FindByID", ctx, "archived").Return(&model.Run{ID: "archived", ReportKey: "runs/archived.log"}, nil)
	mRepo.On("FindByID", ctx, "plain").Return(&model.Run{ID: "plain"}, nil)
	mStore := new(storeMocks.MockStorage)
	mStore.On("PresignGet", ctx, "runs/archived.log", reportURLExpiry).Return("https://minio/runs/archived.log?sig", nil)

	svc := NewHistoryService(mRepo, mStore)

	u, err := svc.ReportURL(ctx, "archived")
	require.NoError(t, err)
	assert.Equal(t, "https://minio/runs/archived.log?sig", u)

	_, err = svc.ReportURL(ctx, "plain")
	assert.ErrorIs(t, err, ErrReportUnavailable)

	_, err = NewHistoryService(mRepo, nil).ReportURL(ctx, "archived")
	assert.ErrorIs(t, err, ErrReportUnavailable)
	mStore.AssertExpectations(t)
}
