package service

import (
	"context"
	"errors"
	"fmt"

	"service_marketplace/internal/model"
	"service_marketplace/internal/repository"
	"service_marketplace/internal/validation"
)

// BookingService manages bookings between customers and workers
type BookingService interface {
	Create(ctx context.Context, customer *model.User, in model.InsertBooking) (*model.Booking, error)
	CustomerBookings(ctx context.Context, customerID int64) ([]model.Booking, error)
	WorkerBookings(ctx context.Context, userID int64) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, caller *model.User, id int64, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	workers  repository.WorkerRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookings repository.BookingRepository, workers repository.WorkerRepository) BookingService {
	return &bookingService{bookings: bookings, workers: workers}
}

// Create books a worker for customer. The date must fall inside the worker's availability.
func (s *bookingService) Create(ctx context.Context, customer *model.User, in model.InsertBooking) (*model.Booking, error) {
	worker, err := s.workers.FindByID(ctx, in.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worker: %w", err)
	}
	if worker == nil {
		return nil, validation.NewFieldError("workerId", "worker does not exist")
	}
	if !worker.Availability.Covers(in.Date) {
		return nil, validation.NewFieldError("date", "worker is not available at this time")
	}

	booking := &model.Booking{
		CustomerID:  customer.ID,
		WorkerID:    worker.ID,
		ServiceType: in.ServiceType,
		Date:        in.Date.UTC(),
		Status:      model.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, validation.NewFieldError("workerId", "worker does not exist")
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) CustomerBookings(ctx context.Context, customerID int64) ([]model.Booking, error) {
	bookings, err := s.bookings.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	return bookings, nil
}

// WorkerBookings lists bookings against the caller's own worker profile
func (s *bookingService) WorkerBookings(ctx context.Context, userID int64) ([]model.Booking, error) {
	worker, err := s.workers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worker profile: %w", err)
	}
	if worker == nil {
		return nil, ErrWorkerProfileNotFound
	}

	bookings, err := s.bookings.FindByWorkerID(ctx, worker.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking along its lifecycle on behalf of one of its parties.
// Re-applying the current status returns the booking unchanged.
func (s *bookingService) UpdateStatus(ctx context.Context, caller *model.User, id int64, status model.BookingStatus) (*model.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	parties, err := s.partiesOf(ctx, caller, booking)
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, ErrForbidden
	}

	allowed := false
	for _, p := range parties {
		if booking.Status.CanTransition(status, p) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}
	if booking.Status == status {
		return booking, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return updated, nil
}

func (s *bookingService) partiesOf(ctx context.Context, caller *model.User, b *model.Booking) ([]model.BookingParty, error) {
	var parties []model.BookingParty
	if b.CustomerID == caller.ID {
		parties = append(parties, model.PartyCustomer)
	}
	if caller.UserType == model.UserTypeWorker {
		worker, err := s.workers.FindByUserID(ctx, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up worker profile: %w", err)
		}
		if worker != nil && worker.ID == b.WorkerID {
			parties = append(parties, model.PartyWorker)
		}
	}
	return parties, nil
}
