package booking

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stayhub/backend/pkg/jwt"
	"github.com/stayhub/backend/pkg/logger"
)

// Handler exposes the booking routes. All routes require a bearer token;
// the owning user is always the authenticated one.
type Handler struct {
	svc    *Service
	tokens *jwt.Service
	log    *slog.Logger
}

// NewHandler creates the booking HTTP handler.
func NewHandler(svc *Service, tokens *jwt.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, tokens: tokens, log: log}
}

// Routes mounts the booking routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(h.tokens))
		r.Post("/bookings", h.create)
		r.Get("/bookings", h.list)
		r.Get("/bookings/{id}", h.getByID)
	})

	return r
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

type createRequest struct {
	HotelID    string    `json:"hotelId"`
	RoomType   string    `json:"roomType"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice int64     `json:"totalPrice"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorBody("invalid or expired token"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	b, err := h.svc.Create(r.Context(), userID, CreateRequest{
		HotelID:    req.HotelID,
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to create booking")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Booking created successfully",
		"booking": b,
	})
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorBody("invalid or expired token"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, errorBody("Booking not found"))
		return
	}

	b, err := h.svc.GetByID(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch booking")
		return
	}

	respondJSON(w, http.StatusOK, b)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorBody("invalid or expired token"))
		return
	}

	bookings, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch bookings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var status int
	var msg string

	switch {
	case errors.Is(err, ErrInvalidBooking):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrBookingNotFound):
		status, msg = http.StatusNotFound, "Booking not found"
	case errors.Is(err, ErrNotOwner):
		status, msg = http.StatusForbidden, "Forbidden"
	default:
		status, msg = http.StatusInternalServerError, fallback
		h.log.ErrorContext(r.Context(), "booking request failed",
			logger.Error(err),
			logger.Component("booking.handler"),
			slog.String("path", r.URL.Path),
		)
	}

	respondJSON(w, status, errorBody(msg))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
