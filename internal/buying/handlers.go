package buying

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HavenEstates/HE-Backend/internal/db"
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

// Status reports connection health and the document count. Kept from the
// original API as a lightweight smoke-test endpoint.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Error checking database status")
		return
	}

	dbStatus := "connected"
	if err := sqlDB.Ping(); err != nil {
		dbStatus = "disconnected"
	}

	var count int64
	if err := db.DB.Model(&BuyProperty{}).Count(&count).Error; err != nil {
		respond.Error(w, http.StatusInternalServerError, "Error checking database status")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":         "Buy properties route is working",
		"dbStatus":        dbStatus,
		"propertiesCount": count,
	})
}

// List supports free-text search plus city and type filters. An empty
// result set is a 404 here; the generic property list returns 200 with an
// empty array. Both behaviors are inherited from the original API surface.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	city := r.URL.Query().Get("city")
	propType := r.URL.Query().Get("type")

	q := db.DB.Model(&BuyProperty{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("location ILIKE ? OR title ILIKE ? OR description ILIKE ? OR property_type ILIKE ?",
			like, like, like, like)
	}
	if city != "" {
		q = q.Where("location ILIKE ?", "%"+city+"%")
	}
	if propType != "" {
		q = q.Where("property_type ILIKE ?", "%"+propType+"%")
	}

	properties := []BuyProperty{}
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		h.Log.WithError(err).Error("list buy properties failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching buy properties")
		return
	}

	if len(properties) == 0 {
		respond.JSON(w, http.StatusNotFound, map[string]any{
			"message": "No properties found",
			"query":   map[string]string{"search": search, "city": city, "type": propType},
		})
		return
	}

	respond.JSON(w, http.StatusOK, properties)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	var property BuyProperty
	if err := db.DB.First(&property, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Error(w, http.StatusNotFound, "Buy property not found")
			return
		}
		h.Log.WithError(err).Error("get buy property failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching buy property")
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

	var input BuyProperty
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Error creating buy property")
		return
	}
	if input.Title == "" || input.Description == "" || input.Price <= 0 || input.Location == "" {
		respond.Error(w, http.StatusBadRequest, "Error creating buy property")
		return
	}
	switch input.ConstructionStatus {
	case "ready", "underConstruction", "preConstruction":
	default:
		respond.Error(w, http.StatusBadRequest, "Error creating buy property")
		return
	}

	input.ID = uuid.NewString()
	input.AgentID = identity.ID

	if err := db.DB.Create(&input).Error; err != nil {
		h.Log.WithError(err).Error("create buy property failed")
		respond.Error(w, http.StatusBadRequest, "Error creating buy property")
		return
	}
	respond.JSON(w, http.StatusCreated, input)
}
