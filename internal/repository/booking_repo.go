package repository

import (
	"context"
	"errors"
	"fmt"

	"service_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// BookingRepository defines operations for bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id int64) (*model.Booking, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]model.Booking, error)
	FindByWorkerID(ctx context.Context, workerID int64) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error)
}

type bookingRepository struct {
	db DBTX
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DBTX) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, customer_id, worker_id, service_type, date, status, created_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	err := row.Scan(&b.ID, &b.CustomerID, &b.WorkerID, &b.ServiceType, &b.Date, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a booking. Unknown customer or worker ids fail with ErrForeignKey.
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	sql := `INSERT INTO bookings (customer_id, worker_id, service_type, date, status)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, b.CustomerID, b.WorkerID, b.ServiceType, b.Date, b.Status).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", classify(err))
	}
	return nil
}

// FindByID retrieves a booking by id, nil when absent
func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return b, nil
}

// FindByCustomerID lists the bookings a customer made
func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE customer_id = $1`, customerID)
}

// FindByWorkerID lists the bookings made against a worker profile
func (r *bookingRepository) FindByWorkerID(ctx context.Context, workerID int64) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE worker_id = $1`, workerID)
}

func (r *bookingRepository) list(ctx context.Context, sql string, args ...interface{}) ([]model.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}

// UpdateStatus sets the status column only
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (*model.Booking, error) {
	sql := `UPDATE bookings SET status = $1 WHERE id = $2 RETURNING ` + bookingColumns
	b, err := scanBooking(r.db.QueryRow(ctx, sql, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return b, nil
}
