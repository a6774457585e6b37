package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/token"
	"github.com/HavenEstates/HE-Backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// Handler owns the register/login/me endpoints, orchestrating the credential
// store and the token service.
type Handler struct {
	Store  *Store
	Tokens *token.Service
	Log    *logrus.Logger
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Summary `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	user, err := h.Store.Create(req.Name, req.Email, req.Password)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			respond.Error(w, http.StatusBadRequest, "User already exists with this email.")
		case errors.As(err, &ve):
			respond.Error(w, http.StatusBadRequest, ve.Message)
		default:
			h.Log.WithError(err).Error("registration failed")
			respond.Error(w, http.StatusInternalServerError, "Server error during registration.")
		}
		return
	}

	signed, err := h.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.Log.WithError(err).Error("token issue failed")
		respond.Error(w, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	respond.JSON(w, http.StatusCreated, sessionResponse{
		Message: "User registered successfully",
		Token:   signed,
		User:    user.Summary(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	// Unknown email and wrong password must be indistinguishable to the
	// client. The distinguishing detail stays in server-side logs only.
	user, err := h.Store.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.Log.WithField("email", req.Email).Debug("login: user not found")
			respond.Error(w, http.StatusBadRequest, "Invalid credentials.")
			return
		}
		h.Log.WithError(err).Error("login: lookup failed")
		respond.Error(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	if !h.Store.VerifyPassword(user, req.Password) {
		h.Log.WithField("email", user.Email).Debug("login: password mismatch")
		respond.Error(w, http.StatusBadRequest, "Invalid credentials.")
		return
	}

	signed, err := h.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.Log.WithError(err).Error("token issue failed")
		respond.Error(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	respond.JSON(w, http.StatusOK, sessionResponse{
		Message: "Login successful",
		Token:   signed,
		User:    user.Summary(),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Store.FindByID(identity.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.Log.WithError(err).Error("me: lookup failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while fetching user data")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]Summary{"user": user.Summary()})
}

// UpdatePassword lets an authenticated user rotate their password after
// re-proving the current one.
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Current and new password are required")
		return
	}

	user, err := h.Store.FindByID(identity.ID)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "User not found")
		return
	}

	if !h.Store.VerifyPassword(user, req.CurrentPassword) {
		respond.Error(w, http.StatusUnauthorized, "Invalid current password")
		return
	}

	if err := h.Store.UpdatePassword(user, req.NewPassword); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			respond.Error(w, http.StatusBadRequest, ve.Message)
			return
		}
		h.Log.WithError(err).Error("password update failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while updating password")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
