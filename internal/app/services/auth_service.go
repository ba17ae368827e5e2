package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/app/models"
	"github.com/webssis/ssis/internal/app/repositories"
	"github.com/webssis/ssis/internal/pkg/apperrors"
	"github.com/webssis/ssis/internal/pkg/auth"
)

// RegistrationResult describes a committed registration. EmailErr is set when
// the user row exists but the welcome email could not be sent.
type RegistrationResult struct {
	UserID    int64
	EmailSent bool
	EmailErr  error
}

// AuthService handles registration, login and the user list
type AuthService interface {
	Register(ctx context.Context, username, userEmail, password string) (*RegistrationResult, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

type authServiceImpl struct {
	userRepo      repositories.IUserRepository
	hasher        *auth.Hasher
	notifications NotificationService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	hasher *auth.Hasher,
	notifications NotificationService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:      userRepo,
		hasher:        hasher,
		notifications: notifications,
		logger:        logger,
	}
}

// Register stores a new user with a bcrypt hash of password, then attempts the
// welcome email. A failed email never undoes the committed user.
func (s *authServiceImpl) Register(ctx context.Context, username, userEmail, password string) (*RegistrationResult, error) {
	if err := requireFields([]string{"username", "email", "password"}, username, userEmail, password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    userEmail,
		Password: hashed,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Str("username", username).Msg("User registered")

	result := &RegistrationResult{UserID: userID}
	if err := s.notifications.SendWelcomeEmail(ctx, userEmail, username); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("User registered but welcome email failed")
		result.EmailErr = err
		return result, nil
	}
	result.EmailSent = true
	return result, nil
}

// Login verifies credentials and returns the user without its password hash
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	if err := requireFields([]string{"username", "password"}, username, password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, err
	}

	if !s.hasher.CheckPassword(user.Password, password) {
		s.logger.Debug().Str("username", username).Msg("Password mismatch")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid password")
	}

	user.Password = ""
	return user, nil
}

// GetAllUsers lists users without password hashes
func (s *authServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}
