package rental

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/ownership"
	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	Log *logrus.Logger
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	properties := []RentalProperty{}
	if err := db.DB.Order("created_at DESC").Find(&properties).Error; err != nil {
		h.Log.WithError(err).Error("list rental properties failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching rental properties")
		return
	}
	respond.JSON(w, http.StatusOK, properties)
}

// NewlyAdded returns the four most recent rentals for the landing page.
func (h *Handler) NewlyAdded(w http.ResponseWriter, r *http.Request) {
	properties := []RentalProperty{}
	if err := db.DB.Order("created_at DESC").Limit(4).Find(&properties).Error; err != nil {
		h.Log.WithError(err).Error("list newly added rentals failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching newly added properties")
		return
	}
	respond.JSON(w, http.StatusOK, properties)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	var property RentalProperty
	if err := db.DB.First(&property, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Rental property not found")
			return
		}
		h.Log.WithError(err).Error("get rental property failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching rental property")
		return
	}
	respond.JSON(w, http.StatusOK, property)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input RentalProperty
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Error creating rental property")
		return
	}
	if input.Title == "" || input.Description == "" || input.Price <= 0 || input.Location == "" {
		respond.Error(w, http.StatusBadRequest, "Error creating rental property")
		return
	}

	input.ID = uuid.NewString()
	input.AgentID = identity.ID

	if err := db.DB.Create(&input).Error; err != nil {
		h.Log.WithError(err).Error("create rental property failed")
		respond.Error(w, http.StatusBadRequest, "Error creating rental property")
		return
	}
	respond.JSON(w, http.StatusCreated, input)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var property RentalProperty
	if err := db.DB.First(&property, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Rental property not found")
			return
		}
		h.Log.WithError(err).Error("load rental property failed")
		respond.Error(w, http.StatusInternalServerError, "Error updating rental property")
		return
	}

	if err := ownership.Authorize(&property, identity.ID); err != nil {
		respond.Error(w, http.StatusForbidden, "Not authorized to update this property")
		return
	}

	var input RentalProperty
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Error updating rental property")
		return
	}

	// agentId and id never move to the incoming values.
	property.Title = input.Title
	property.Description = input.Description
	property.Price = input.Price
	property.Location = input.Location
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Area = input.Area
	property.PropertyType = input.PropertyType
	property.Images = input.Images
	property.Amenities = input.Amenities
	property.AvailableFrom = input.AvailableFrom
	property.MinimumLease = input.MinimumLease
	property.Deposit = input.Deposit
	property.PetsAllowed = input.PetsAllowed
	property.Furnished = input.Furnished
	property.Utilities = input.Utilities

	if err := db.DB.Save(&property).Error; err != nil {
		h.Log.WithError(err).Error("update rental property failed")
		respond.Error(w, http.StatusBadRequest, "Error updating rental property")
		return
	}
	respond.JSON(w, http.StatusOK, property)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var property RentalProperty
	if err := db.DB.First(&property, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Rental property not found")
			return
		}
		h.Log.WithError(err).Error("load rental property failed")
		respond.Error(w, http.StatusInternalServerError, "Error deleting rental property")
		return
	}

	if err := ownership.Authorize(&property, identity.ID); err != nil {
		respond.Error(w, http.StatusForbidden, "Not authorized to delete this property")
		return
	}

	if err := db.DB.Delete(&property).Error; err != nil {
		h.Log.WithError(err).Error("delete rental property failed")
		respond.Error(w, http.StatusInternalServerError, "Error deleting rental property")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Rental property deleted successfully"})
}
