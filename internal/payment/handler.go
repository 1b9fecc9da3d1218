package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayhub/backend/pkg/jwt"
	"github.com/stayhub/backend/pkg/logger"
)

// Handler exposes the payment routes.
type Handler struct {
	svc    *Service
	tokens *jwt.Service
	log    *slog.Logger
}

// NewHandler creates the payment HTTP handler.
func NewHandler(svc *Service, tokens *jwt.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, tokens: tokens, log: log}
}

// Routes returns the payment routes, guarded by the bearer middleware.
// Callers mount the router under /payments.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(h.tokens))
		r.Post("/intent", h.createIntent)
	})

	return r
}

type intentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (h *Handler) createIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	intent, err := h.svc.CreateIntent(r.Context(), req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmountBelowMinimum):
			respondJSON(w, http.StatusBadRequest, errorBody("Amount below minimum charge"))
		case errors.Is(err, ErrCurrencyRequired):
			respondJSON(w, http.StatusBadRequest, errorBody("Currency is required"))
		default:
			h.log.ErrorContext(r.Context(), "payment intent creation failed",
				logger.Error(err),
				logger.Component("payment.handler"),
			)
			respondJSON(w, http.StatusInternalServerError, errorBody("Failed to create payment intent"))
		}
		return
	}

	respondJSON(w, http.StatusCreated, intent)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
