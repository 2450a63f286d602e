package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"service_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// WorkerRepository defines operations for worker profiles
type WorkerRepository interface {
	Create(ctx context.Context, worker *model.Worker) error
	FindByID(ctx context.Context, id int64) (*model.Worker, error)
	FindByUserID(ctx context.Context, userID int64) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	Update(ctx context.Context, id int64, patch model.WorkerPatch) (*model.Worker, error)
}

type workerRepository struct {
	db DBTX
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db DBTX) WorkerRepository {
	return &workerRepository{db: db}
}

const workerColumns = `id, user_id, working_status, location, services, experience, availability, about, certifications, rating`

func scanWorker(row pgx.Row) (*model.Worker, error) {
	w := &model.Worker{}
	err := row.Scan(&w.ID, &w.UserID, &w.WorkingStatus, &w.Location, &w.Services, &w.Experience,
		&w.Availability, &w.About, &w.Certifications, &w.Rating)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a worker profile. A second profile for the same user fails with ErrDuplicate.
func (r *workerRepository) Create(ctx context.Context, w *model.Worker) error {
	sql := `INSERT INTO workers (user_id, working_status, location, services, experience, availability, about, certifications)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, rating`
	err := r.db.QueryRow(ctx, sql, w.UserID, w.WorkingStatus, w.Location, w.Services, w.Experience,
		w.Availability, w.About, w.Certifications).Scan(&w.ID, &w.Rating)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", classify(err))
	}
	return nil
}

// FindByID retrieves a worker by id, nil when absent
func (r *workerRepository) FindByID(ctx context.Context, id int64) (*model.Worker, error) {
	sql := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	w, err := scanWorker(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find worker by ID: %w", err)
	}
	return w, nil
}

// FindByUserID retrieves the profile owned by a user, nil when absent
func (r *workerRepository) FindByUserID(ctx context.Context, userID int64) (*model.Worker, error) {
	sql := `SELECT ` + workerColumns + ` FROM workers WHERE user_id = $1`
	w, err := scanWorker(r.db.QueryRow(ctx, sql, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find worker by user ID: %w", err)
	}
	return w, nil
}

// List returns every worker profile, unordered and unpaginated
func (r *workerRepository) List(ctx context.Context) ([]model.Worker, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workerColumns+` FROM workers`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	workers := []model.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, *w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating worker rows: %w", err)
	}
	return workers, nil
}

// Update merge-patches a worker: only the fields set on patch are written.
// An empty patch reads the row back unchanged.
func (r *workerRepository) Update(ctx context.Context, id int64, patch model.WorkerPatch) (*model.Worker, error) {
	var sets []string
	args := []interface{}{}
	argCount := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if patch.WorkingStatus != nil {
		set("working_status", *patch.WorkingStatus)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Services != nil {
		set("services", *patch.Services)
	}
	if patch.Experience != nil {
		set("experience", *patch.Experience)
	}
	if patch.Availability != nil {
		set("availability", *patch.Availability)
	}
	if patch.About != nil {
		set("about", *patch.About)
	}
	if patch.Certifications != nil {
		set("certifications", *patch.Certifications)
	}

	if len(sets) == 0 {
		w, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, ErrNotFound
		}
		return w, nil
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("UPDATE workers SET ")
	queryBuilder.WriteString(strings.Join(sets, ", "))
	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d RETURNING %s", argCount, workerColumns))
	args = append(args, id)

	w, err := scanWorker(r.db.QueryRow(ctx, queryBuilder.String(), args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update worker: %w", classify(err))
	}
	return w, nil
}
