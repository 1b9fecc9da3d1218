package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stayhub/backend/pkg/jwt"
	"github.com/stayhub/backend/pkg/logger"
)

// Handler translates HTTP requests into Service calls and Service errors
// into status codes and JSON bodies. Token issuance happens here, not in the
// service, so secret management stays out of the business layer.
type Handler struct {
	svc    *Service
	tokens *jwt.Service
	log    *slog.Logger
}

// NewHandler creates the user HTTP handler.
func NewHandler(svc *Service, tokens *jwt.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, tokens: tokens, log: log}
}

// Routes mounts the user service routes. All identifier-based routes require
// a bearer token whose user id matches the target id.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.register)
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(h.tokens))

		r.Get("/profile", h.profile)

		r.Route("/users/{id}", func(r chi.Router) {
			r.Use(h.requireOwner)
			r.Get("/", h.getUser)
			r.Put("/", h.updateUser)
			r.Put("/password", h.changePassword)
			r.Delete("/", h.deleteUser)
		})
	})

	return r
}

// requireOwner verifies the authenticated identity matches the target id.
// A non-uuid path id cannot match any user and is reported as not found.
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondJSON(w, http.StatusNotFound, errorBody("User not found"))
			return
		}
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok || claims.UserID != id.String() {
			respondJSON(w, http.StatusForbidden, errorBody("Forbidden"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	id, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err, "Failed to register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"userId":  id,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err, "Login failed")
		return
	}

	token, err := h.tokens.Issue(u.ID, u.Email)
	if err != nil {
		h.respondError(w, r, err, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"userId":  u.ID,
	})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorBody("missing or invalid token"))
		return
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorBody("invalid or expired token"))
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Profile fetched successfully",
		"user":    u,
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, _ := uuid.Parse(chi.URLParam(r, "id"))

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch user")
		return
	}

	respondJSON(w, http.StatusOK, u)
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Gender   *string `json:"gender"`
	DOB      *string `json:"dob"`
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := uuid.Parse(chi.URLParam(r, "id"))

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), id, ProfileUpdate{
		Username: req.Username,
		Gender:   req.Gender,
		DOB:      req.DOB,
	})
	if err != nil {
		h.respondError(w, r, err, "Failed to update user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    u,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	id, _ := uuid.Parse(chi.URLParam(r, "id"))

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respondJSON(w, http.StatusBadRequest, errorBody("Current and new password are required"))
		return
	}

	if err := h.svc.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(w, r, err, "Failed to update password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Password updated successfully",
	})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, _ := uuid.Parse(chi.URLParam(r, "id"))

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		h.respondError(w, r, err, "Failed to delete user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "User deleted successfully",
	})
}

// respondError maps service errors to HTTP statuses with the client-facing
// message for each. Unclassified errors are logged server-side and reported
// with the operation's generic message only.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var status int
	var msg string

	switch {
	case errors.Is(err, ErrAllFieldsRequired):
		status, msg = http.StatusBadRequest, "All fields are required"
	case errors.Is(err, ErrCredentialsRequired):
		status, msg = http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, ErrEmailAlreadyRegistered):
		status, msg = http.StatusConflict, "Email already registered"
	case errors.Is(err, ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrCurrentPasswordIncorrect):
		status, msg = http.StatusUnauthorized, "Current password is incorrect"
	case errors.Is(err, ErrUserNotFound):
		status, msg = http.StatusNotFound, "User not found"
	default:
		status, msg = http.StatusInternalServerError, fallback
		h.log.ErrorContext(r.Context(), "user request failed",
			logger.Error(err),
			logger.Component("user.handler"),
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
