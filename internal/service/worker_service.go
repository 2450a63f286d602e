package service

import (
	"context"
	"errors"
	"fmt"

	"service_marketplace/internal/model"
	"service_marketplace/internal/repository"
)

// WorkerService manages worker profiles
type WorkerService interface {
	Create(ctx context.Context, owner *model.User, in model.InsertWorker) (*model.Worker, error)
	Get(ctx context.Context, id int64) (*model.Worker, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	Update(ctx context.Context, caller *model.User, id int64, patch model.WorkerPatch) (*model.Worker, error)
}

type workerService struct {
	repo repository.WorkerRepository
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(repo repository.WorkerRepository) WorkerService {
	return &workerService{repo: repo}
}

// Create stores the profile for owner. Only worker accounts may hold one, and only one.
func (s *workerService) Create(ctx context.Context, owner *model.User, in model.InsertWorker) (*model.Worker, error) {
	if owner.UserType != model.UserTypeWorker {
		return nil, ErrForbidden
	}

	existing, err := s.repo.FindByUserID(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, ErrWorkerProfileExists
	}

	worker := in.ToWorker(owner.ID)
	if worker.Certifications == nil {
		worker.Certifications = []string{}
	}
	if err := s.repo.Create(ctx, worker); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrWorkerProfileExists
		}
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker, nil
}

func (s *workerService) Get(ctx context.Context, id int64) (*model.Worker, error) {
	worker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

func (s *workerService) GetByUserID(ctx context.Context, userID int64) (*model.Worker, error) {
	worker, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker profile: %w", err)
	}
	if worker == nil {
		return nil, ErrWorkerProfileNotFound
	}
	return worker, nil
}

func (s *workerService) List(ctx context.Context) ([]model.Worker, error) {
	workers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// Update merge-patches the profile. Only its owner may change it.
func (s *workerService) Update(ctx context.Context, caller *model.User, id int64, patch model.WorkerPatch) (*model.Worker, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != caller.ID {
		return nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return updated, nil
}
