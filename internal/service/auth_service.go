package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"service_marketplace/internal/model"
	"service_marketplace/internal/repository"
	"service_marketplace/internal/utils"

	"github.com/google/uuid"
)

// AuthService provides registration, login and session lookup
type AuthService interface {
	Register(ctx context.Context, in model.InsertUser) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
	PruneSessions(ctx context.Context) (int64, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtUtil     *utils.JWTUtil
	logger      *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtUtil *utils.JWTUtil, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtUtil:     jwtUtil,
		logger:      logger,
	}
}

// Register creates a new account and logs it in
func (s *authService) Register(ctx context.Context, in model.InsertUser) (*model.User, string, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       in.Username,
		PasswordHash:   hashedPassword,
		UserType:       in.UserType,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		ProfilePicture: in.ProfilePicture,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "user created but session could not be started", "user_id", user.ID, "error", err)
		return user, "", fmt.Errorf("user created, but failed to start session: %w", err)
	}

	return user, token, nil
}

// Login checks credentials and opens a new session
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the session behind token. Unknown or invalid tokens are ignored.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to its user
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || session.UserID != claims.UserID {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// PruneSessions removes expired sessions
func (s *authService) PruneSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}

func (s *authService) startSession(ctx context.Context, userID int64) (string, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.jwtUtil.TTL()).UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(session.ID, userID, session.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
