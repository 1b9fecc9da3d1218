package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/stripe/stripe-go/v82"

	"github.com/stayhub/backend/pkg/logger"
)

var (
	// ErrAmountBelowMinimum is returned when the amount is under the
	// configured minimum charge.
	ErrAmountBelowMinimum = errors.New("amount below minimum charge")
	// ErrCurrencyRequired is returned when no currency is supplied.
	ErrCurrencyRequired = errors.New("currency is required")
)

// Config holds environment-driven Stripe settings.
type Config struct {
	SecretKey string `env:"STRIPE_SECRET_KEY,required"`     // Server-side API key.
	MinAmount int64  `env:"STRIPE_MIN_AMOUNT" envDefault:"50"` // Minimum charge in minor units.
}

// IntentCreator is the slice of the Stripe client the service consumes.
// Satisfied by *paymentintent.Client.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Intent is the subset of a created PaymentIntent returned to the client.
// The client secret is what the frontend needs to confirm the payment.
type Intent struct {
	ID           string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
}

// Service creates Stripe payment intents. It is a pass-through: the only
// business rule is the minimum-amount check, everything else is Stripe's.
type Service struct {
	intents   IntentCreator
	minAmount int64
	logger    *slog.Logger
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// NewService creates the payment service. A non-positive minAmount disables
// the minimum check beyond requiring a positive amount.
func NewService(intents IntentCreator, minAmount int64, opts ...Option) *Service {
	s := &Service{
		intents:   intents,
		minAmount: minAmount,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIntent validates the amount and creates a payment intent.
func (s *Service) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	if currency == "" {
		return nil, ErrCurrencyRequired
	}
	min := s.minAmount
	if min < 1 {
		min = 1
	}
	if amount < min {
		return nil, ErrAmountBelowMinimum
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.InfoContext(ctx, "payment intent created",
		slog.String("payment_intent_id", pi.ID),
		slog.Int64("amount", amount),
		slog.String("currency", currency),
		logger.Component("payment"),
	)

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
