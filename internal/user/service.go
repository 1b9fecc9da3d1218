package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/backend/pkg/logger"
)

// Storage defines the credential store operations required by the Service.
type Storage interface {
	// FindByEmail returns the user with the stored password hash included,
	// or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID returns the user without the password hash, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// GetPasswordHash returns the stored hash for the user, or ErrUserNotFound.
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)
	// Insert stores a new user. A duplicate email is reported as
	// ErrEmailAlreadyRegistered by the unique index, atomically with the write.
	Insert(ctx context.Context, user *User) error
	// UpdateByID applies a partial profile update and returns the post-update
	// document without the password hash, or ErrUserNotFound.
	UpdateByID(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*User, error)
	// UpdatePasswordByID replaces the stored hash, or ErrUserNotFound.
	UpdatePasswordByID(ctx context.Context, id uuid.UUID, hash string) error
	// DeleteByID removes the user, or ErrUserNotFound when nothing matched.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service orchestrates the credential lifecycle: registration, login,
// profile read/update, password change and account deletion. It is stateless;
// the store is the only shared mutable resource.
type Service struct {
	storage Storage
	hasher  PasswordHasher
	logger  *slog.Logger
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// NewService creates the auth service.
func NewService(storage Storage, hasher PasswordHasher, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		hasher:  hasher,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user with a hashed password and returns the new id.
// Gender and dob default to empty strings and are set via profile update.
func (s *Service) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	if username == "" || email == "" || password == "" {
		return uuid.Nil, ErrAllFieldsRequired
	}

	_, err := s.storage.FindByEmail(ctx, email)
	if err == nil {
		return uuid.Nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, ErrUserNotFound) {
		return uuid.Nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Gender:       "",
		DOB:          "",
		CreatedAt:    time.Now(),
	}

	if err := s.storage.Insert(ctx, u); err != nil {
		// Two concurrent registrations can both pass the lookup above; the
		// unique email index resolves the race at insert time.
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(u.ID.String()),
		logger.Component("auth"),
	)

	return u.ID, nil
}

// Login verifies the credentials and returns the user. Every failure path
// yields ErrInvalidCredentials so the response does not reveal whether the
// email exists. Token issuance belongs to the caller, which keeps this
// service free of secret management.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	u, err := s.storage.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// GetUser returns the user without the password hash.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.storage.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateProfile applies a partial update to username, gender and dob and
// returns the updated document. Fields absent from the update keep their
// stored values.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*User, error) {
	if update.Empty() {
		return s.GetUser(ctx, id)
	}

	u, err := s.storage.UpdateByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// ChangePassword verifies the current password against the stored hash and
// replaces it with the bcrypt hash of the new one.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	hash, err := s.storage.GetPasswordHash(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get password hash: %w", err)
	}

	if !s.hasher.Verify(currentPassword, hash) {
		return ErrCurrentPasswordIncorrect
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.storage.UpdatePasswordByID(ctx, id, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed",
		logger.UserID(id.String()),
		logger.Component("auth"),
	)

	return nil
}

// DeleteUser removes the user record. Bookings are not cascaded, and tokens
// already issued stay valid until their natural expiry.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.storage.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.InfoContext(ctx, "user deleted",
		logger.UserID(id.String()),
		logger.Component("auth"),
	)

	return nil
}
