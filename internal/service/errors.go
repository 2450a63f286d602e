package service

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("you do not have permission to access this resource")

	ErrWorkerNotFound        = errors.New("worker not found")
	ErrWorkerProfileExists   = errors.New("a worker profile already exists for this user")
	ErrWorkerProfileNotFound = errors.New("no worker profile for this user")

	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
)
