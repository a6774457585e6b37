package booking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/buying"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/rental"
	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/HavenEstates/HE-Backend/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Log *logrus.Logger
}

type createRequest struct {
	PropertyID   string    `json:"propertyId"`
	PropertyType string    `json:"propertyType"`
	TourDate     time.Time `json:"tourDate"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "PropertyId, propertyType, and tourDate are required")
		return
	}
	if req.PropertyID == "" || req.TourDate.IsZero() {
		respond.Error(w, http.StatusBadRequest, "PropertyId, propertyType, and tourDate are required")
		return
	}
	if req.PropertyType != "rental" && req.PropertyType != "buy" {
		respond.Error(w, http.StatusBadRequest, "PropertyId, propertyType, and tourDate are required")
		return
	}

	booking := TourBooking{
		ID:           uuid.NewString(),
		PropertyID:   req.PropertyID,
		PropertyType: req.PropertyType,
		UserID:       userID,
		TourDate:     req.TourDate,
		Status:       "pending",
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		h.Log.WithError(err).Error("create tour booking failed")
		respond.Error(w, http.StatusInternalServerError, "Error creating tour booking")
		return
	}
	respond.JSON(w, http.StatusCreated, booking)
}

type bookingWithProperty struct {
	TourBooking
	Property *PropertySummary `json:"property"`
}

// ListForUser returns the caller's bookings newest-first, each joined with
// a slim property summary resolved from the rental or buy table.
func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	bookings := []TourBooking{}
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		h.Log.WithError(err).Error("list tour bookings failed")
		respond.Error(w, http.StatusInternalServerError, "Error fetching tour bookings")
		return
	}

	out := make([]bookingWithProperty, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingWithProperty{
			TourBooking: b,
			Property:    h.propertySummary(b),
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) propertySummary(b TourBooking) *PropertySummary {
	switch b.PropertyType {
	case "rental":
		var p rental.RentalProperty
		if err := db.DB.First(&p, "id = ?", b.PropertyID).Error; err != nil {
			return nil
		}
		return &PropertySummary{ID: p.ID, Title: p.Title, Location: p.Location, Images: p.Images}
	case "buy":
		var p buying.BuyProperty
		if err := db.DB.First(&p, "id = ?", b.PropertyID).Error; err != nil {
			return nil
		}
		return &PropertySummary{ID: p.ID, Title: p.Title, Location: p.Location, Images: p.Images}
	}
	return nil
}
