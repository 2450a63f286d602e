package service

import (
	"context"

	"service_marketplace/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id string) (*model.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.Session)
	return s, args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockWorkerRepo struct{ mock.Mock }

func (m *mockWorkerRepo) Create(ctx context.Context, w *model.Worker) error {
	return m.Called(ctx, w).Error(0)
}

func (m *mockWorkerRepo) FindByID(ctx context.Context, id int64) (*model.Worker, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*model.Worker)
	return w, args.Error(1)
}

func (m *mockWorkerRepo) FindByUserID(ctx context.Context, userID int64) (*model.Worker, error) {
	args := m.Called(ctx, userID)
	w, _ := args.Get(0).(*model.Worker)
	return w, args.Error(1)
}

func (m *mockWorkerRepo) List(ctx context.Context) ([]model.Worker, error) {
	args := m.Called(ctx)
	ws, _ := args.Get(0).([]model.Worker)
	return ws, args.Error(1)
}

func (m *mockWorkerRepo) Update(ctx context.Context, id int64, patch model.WorkerPatch) (*model.Worker, error) {
	args := m.Called(ctx, id, patch)
	w, _ := args.Get(0).(*model.Worker)
	return w, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Booking, error) {
	args := m.Called(ctx, customerID)
	bs, _ := args.Get(0).([]model.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingRepo) FindByWorkerID(ctx context.Context, workerID int64) ([]model.Booking, error) {
	args := m.Called(ctx, workerID)
	bs, _ := args.Get(0).([]model.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error) {
	args := m.Called(ctx, id, status)
	b, _ := args.Get(0).(*model.Booking)
	return b, args.Error(1)
}
