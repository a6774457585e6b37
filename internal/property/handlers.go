package property

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
	properties := []Property{}
	if err := db.DB.Order("created_at DESC").Find(&properties).Error; err != nil {
		h.Log.WithError(err).Error("list properties failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while fetching properties.")
		return
	}
	respond.JSON(w, http.StatusOK, properties)
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	properties := []Property{}
	if err := db.DB.Where("featured = ?", true).Order("created_at DESC").Limit(6).Find(&properties).Error; err != nil {
		h.Log.WithError(err).Error("list featured properties failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while fetching featured properties.")
		return
	}
	respond.JSON(w, http.StatusOK, properties)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid property ID format.")
		return
	}

	var property Property
	if err := db.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Property not found.")
			return
		}
		h.Log.WithError(err).Error("get property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while fetching property.")
		return
	}
	respond.JSON(w, http.StatusOK, property)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input Property
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request format.")
		return
	}
	if msg, ok := validate(&input); !ok {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	// The server decides ownership; whatever the client sent is ignored.
	input.ID = uuid.NewString()
	input.PostedBy = identity.ID
	if input.AgentID == "" {
		input.AgentID = identity.ID
	}

	if err := db.DB.Create(&input).Error; err != nil {
		h.Log.WithError(err).Error("create property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while creating property.")
		return
	}
	respond.JSON(w, http.StatusCreated, input)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid property ID format.")
		return
	}

	var property Property
	if err := db.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Property not found.")
			return
		}
		h.Log.WithError(err).Error("load property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while updating property.")
		return
	}

	if err := ownership.Authorize(&property, identity.ID); err != nil {
		respond.Error(w, http.StatusForbidden, "User not authorized to update this property")
		return
	}

	var input Property
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	// Mutable fields only: id, postedBy, and createdAt stay as stored.
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
	property.Featured = input.Featured
	property.Status = input.Status

	if msg, ok := validate(&property); !ok {
		respond.Error(w, http.StatusBadRequest, msg)
		return
	}

	if err := db.DB.Save(&property).Error; err != nil {
		h.Log.WithError(err).Error("update property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while updating property.")
		return
	}
	respond.JSON(w, http.StatusOK, property)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid property ID format.")
		return
	}

	var property Property
	if err := db.DB.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Property not found.")
			return
		}
		h.Log.WithError(err).Error("load property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while deleting property.")
		return
	}

	if err := ownership.Authorize(&property, identity.ID); err != nil {
		respond.Error(w, http.StatusForbidden, "User not authorized to delete this property")
		return
	}

	if err := db.DB.Delete(&property).Error; err != nil {
		h.Log.WithError(err).Error("delete property failed")
		respond.Error(w, http.StatusInternalServerError, "Server error while deleting property.")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":  "Property deleted successfully.",
		"property": property,
	})
}

func validate(p *Property) (string, bool) {
	switch {
	case p.Title == "":
		return "title is required.", false
	case p.Description == "":
		return "description is required.", false
	case p.Price <= 0:
		return "price is required.", false
	case p.Location == "":
		return "location is required.", false
	case p.Status != "forSale" && p.Status != "forRent" && p.Status != "both":
		return "status must be forSale, forRent, or both.", false
	}
	return "", true
}
