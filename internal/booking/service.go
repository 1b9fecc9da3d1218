package booking

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

// Storage defines the persistence operations required by the Service.
type Storage interface {
	Insert(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error)
}

// CreateRequest carries the caller-supplied fields of a new booking. The
// owning user comes from the verified token, never from the request body.
type CreateRequest struct {
	HotelID    string
	RoomType   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
}

// Service implements booking creation and retrieval. Each operation is a
// single-document store call; consistency is whatever the store guarantees
// per document.
type Service struct {
	storage Storage
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

// NewService creates the booking service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new booking for the given user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Booking, error) {
	switch {
	case req.HotelID == "":
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidBooking)
	case req.CheckIn.IsZero() || req.CheckOut.IsZero():
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidBooking)
	case !req.CheckIn.Before(req.CheckOut):
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidBooking)
	case req.Guests < 1:
		return nil, fmt.Errorf("%w: at least one guest is required", ErrInvalidBooking)
	case req.TotalPrice <= 0:
		return nil, fmt.Errorf("%w: total price must be positive", ErrInvalidBooking)
	}

	b := &Booking{
		ID:         uuid.New(),
		UserID:     userID,
		HotelID:    req.HotelID,
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     StatusConfirmed,
		CreatedAt:  time.Now(),
	}

	if err := s.storage.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.InfoContext(ctx, "booking created",
		logger.BookingID(b.ID.String()),
		logger.UserID(userID.String()),
		logger.Component("booking"),
	)

	return b, nil
}

// GetByID returns the booking if it exists and belongs to the caller.
func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (*Booking, error) {
	b, err := s.storage.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	return b, nil
}

// ListByUser returns the caller's bookings, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	bookings, err := s.storage.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
