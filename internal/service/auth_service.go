package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storewatch/internal/auth"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

const bcryptCost = 10

// ErrUserAlreadyExists is returned when trying to register an existing email.
var ErrUserAlreadyExists = errors.New("user already exists")

// AuthService handles credential checks and session revocation.
type AuthService interface {
	Verify(ctx context.Context, email, password string) (*model.Identity, error)
	Register(ctx context.Context, email, password, username, role string) (*model.User, error)
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) bool
}

type authService struct {
	users       repository.UserRepository
	revocations auth.RevocationStoreInterface
	log         *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, revocations auth.RevocationStoreInterface, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authService{users: users, revocations: revocations, log: log}
}

// Verify checks email and password. It returns ErrUserNotFound for an
// unknown email, ErrInvalidPassword for a hash mismatch and ErrAuthFailed
// when the lookup itself fails.
func (s *authService) Verify(ctx context.Context, email, password string) (*model.Identity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("sign-in rejected", zap.String("email", email), zap.String("reason", "user_not_found"))
			return nil, apperrors.ErrUserNotFound
		}
		s.log.Error("credential lookup failed", zap.String("email", email), zap.Error(err))
		return nil, apperrors.ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Info("sign-in rejected", zap.String("email", email), zap.String("reason", "invalid_password"))
		return nil, apperrors.ErrInvalidPassword
	}

	id := user.Identity()
	return &id, nil
}

// Register creates a user with a bcrypt-hashed password in a single insert.
func (s *authService) Register(ctx context.Context, email, password, username, role string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Revoke puts token on the revocation list until it would expire anyway.
func (s *authService) Revoke(ctx context.Context, token string) error {
	if token == "" || s.revocations == nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, token, auth.SessionTTL); err != nil {
		s.log.Error("revoke session failed", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether token was signed out. Lookup failures read as
// not revoked.
func (s *authService) IsRevoked(ctx context.Context, token string) bool {
	if s.revocations == nil {
		return false
	}
	revoked, err := s.revocations.IsRevoked(ctx, token)
	return err == nil && revoked
}
