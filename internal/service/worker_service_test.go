package service

import (
	"context"
	"errors"
	"testing"

	"service_marketplace/internal/model"
	"service_marketplace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func plumberInput() model.InsertWorker {
	experience := 3
	return model.InsertWorker{
		WorkingStatus: model.WorkingStatusEmployed,
		Location:      "Leeds",
		Services:      []string{"Plumbing"},
		Experience:    &experience,
		Availability: &model.Availability{
			Days:      []string{"Monday"},
			TimeSlots: []model.TimeSlot{{Start: "09:00", End: "12:00"}},
		},
		Certifications: []string{},
	}
}

func TestWorkerService_Create(t *testing.T) {
	repo := &mockWorkerRepo{}
	svc := NewWorkerService(repo)
	ctx := context.Background()
	owner := &model.User{ID: 3, UserType: model.UserTypeWorker}

	repo.On("FindByUserID", ctx, int64(3)).Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Worker")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Worker).ID = 1
	}).Return(nil)

	w, err := svc.Create(ctx, owner, plumberInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, int64(3), w.UserID)
	assert.Equal(t, 3, w.Experience)
	assert.Nil(t, w.Rating)
	repo.AssertExpectations(t)
}

func TestWorkerService_CreateRequiresWorkerAccount(t *testing.T) {
	repo := &mockWorkerRepo{}
	svc := NewWorkerService(repo)

	_, err := svc.Create(context.Background(), &model.User{ID: 5, UserType: model.UserTypeCustomer}, plumberInput())
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkerService_CreateSecondProfile(t *testing.T) {
	ctx := context.Background()
	owner := &model.User{ID: 3, UserType: model.UserTypeWorker}

	t.Run("existing row", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByUserID", ctx, int64(3)).Return(&model.Worker{ID: 1, UserID: 3}, nil)

		_, err := NewWorkerService(repo).Create(ctx, owner, plumberInput())
		assert.ErrorIs(t, err, ErrWorkerProfileExists)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByUserID", ctx, int64(3)).Return(nil, nil)
		repo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := NewWorkerService(repo).Create(ctx, owner, plumberInput())
		assert.ErrorIs(t, err, ErrWorkerProfileExists)
	})
}

func TestWorkerService_Get(t *testing.T) {
	repo := &mockWorkerRepo{}
	svc := NewWorkerService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(1)).Return(&model.Worker{ID: 1}, nil)
	repo.On("FindByID", ctx, int64(2)).Return(nil, nil)
	repo.On("FindByID", ctx, int64(3)).Return(nil, errors.New("db down"))

	w, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	_, err = svc.Get(ctx, 3)
	assert.ErrorContains(t, err, "db down")
}

func TestWorkerService_GetByUserID(t *testing.T) {
	repo := &mockWorkerRepo{}
	svc := NewWorkerService(repo)
	ctx := context.Background()

	repo.On("FindByUserID", ctx, int64(8)).Return(nil, nil)

	_, err := svc.GetByUserID(ctx, 8)
	assert.ErrorIs(t, err, ErrWorkerProfileNotFound)
}

func TestWorkerService_Update(t *testing.T) {
	ctx := context.Background()
	location := "Bath"
	patch := model.WorkerPatch{Location: &location}

	t.Run("owner", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByID", ctx, int64(1)).Return(&model.Worker{ID: 1, UserID: 3, Location: "Leeds"}, nil)
		repo.On("Update", ctx, int64(1), patch).Return(&model.Worker{ID: 1, UserID: 3, Location: "Bath"}, nil)

		w, err := NewWorkerService(repo).Update(ctx, &model.User{ID: 3}, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, "Bath", w.Location)
	})

	t.Run("someone else", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByID", ctx, int64(1)).Return(&model.Worker{ID: 1, UserID: 3}, nil)

		_, err := NewWorkerService(repo).Update(ctx, &model.User{ID: 4}, 1, patch)
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByID", ctx, int64(404)).Return(nil, nil)

		_, err := NewWorkerService(repo).Update(ctx, &model.User{ID: 3}, 404, patch)
		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})

	t.Run("deleted in between", func(t *testing.T) {
		repo := &mockWorkerRepo{}
		repo.On("FindByID", ctx, int64(1)).Return(&model.Worker{ID: 1, UserID: 3}, nil)
		repo.On("Update", ctx, int64(1), patch).Return(nil, repository.ErrNotFound)

		_, err := NewWorkerService(repo).Update(ctx, &model.User{ID: 3}, 1, patch)
		assert.ErrorIs(t, err, ErrWorkerNotFound)
	})
}
