package agent

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Log *logrus.Logger
}

type submitRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Experience    *int   `json:"experience"` // pointer: zero years is valid, absent is not
	LicenseNumber string `json:"licenseNumber"`
	About         string `json:"about"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "All required fields must be provided")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Phone == "" || req.Experience == nil || req.LicenseNumber == "" {
		respond.Error(w, http.StatusBadRequest, "All required fields must be provided")
		return
	}

	application := Application{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Experience:    *req.Experience,
		LicenseNumber: req.LicenseNumber,
		About:         req.About,
		Status:        "pending",
		SubmittedAt:   time.Now(),
	}

	if err := db.DB.Create(&application).Error; err != nil {
		h.Log.WithError(err).Error("submit agent application failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":     "Agent application submitted successfully",
		"application": application,
	})
}
