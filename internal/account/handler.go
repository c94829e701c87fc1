// AngelaMos | 2026
// handler.go

package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gardenly/go-backend/internal/core"
	"github.com/gardenly/go-backend/internal/guard"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Put("/update-profile", h.UpdateProfile)
	r.Delete("/delete-account", h.DeleteAccount)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	username, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			core.BadRequest(w, "Username already exists")
		case errors.Is(err, ErrEmailTaken):
			core.BadRequest(w, "Email already exists")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, SignupResponse{
		Success:  true,
		Message:  "User account created successfully",
		Username: username,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.Unauthorized(w, "Invalid username or password")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	guard.SetFlag(w)
	core.OK(w, ProfileResponse{
		Success: true,
		Message: "Login successful",
		User:    *profile,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	guard.ClearFlag(w)
	core.OK(w, MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			core.BadRequest(w, "Invalid email format")
		case errors.Is(err, ErrEmailTaken):
			core.BadRequest(w, "Email already exists for another user")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "User not found")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    *profile,
	})
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.DeleteAccount(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			core.Unauthorized(w, "Invalid username or password")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "User not found")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	guard.ClearFlag(w)
	core.OK(w, MessageResponse{
		Success: true,
		Message: "Account deleted successfully",
	})
}
