package listing

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Log *logrus.Logger
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input Listing
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	if msg := validate(&input); msg != "" {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	input.ID = uuid.NewString()
	input.PostedBy = identity.ID
	input.PostedAt = time.Now()

	if err := db.DB.Create(&input).Error; err != nil {
		h.Log.WithError(err).Error("create listing failed")
		respond.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "Property listed successfully!",
		"listing": input,
	})
}

func validate(l *Listing) string {
	if l.ListFor != "Sale" && l.ListFor != "Rent" {
		return "listFor (Sale or Rent) is required."
	}
	if l.PropertyType == "" {
		return "propertyType is required."
	}
	if l.AskingPrice <= 0 {
		return "askingPrice is required."
	}
	if l.Address.StreetAddress == "" || l.Address.City == "" || l.Address.State == "" || l.Address.ZipCode == "" {
		return "Complete address is required."
	}
	// Each detail must be present; an explicit zero is fine (a studio has
	// no bedrooms) but an absent or negative value is not.
	d := l.Details
	if d.Bedrooms == nil || d.Bathrooms == nil || d.Area == nil ||
		*d.Bedrooms < 0 || *d.Bathrooms < 0 || *d.Area < 0 {
		return "Complete propertyDetails are required."
	}
	if l.Description == "" {
		return "description is required."
	}
	if len(l.Images) == 0 {
		return "At least one image is required."
	}
	return ""
}
