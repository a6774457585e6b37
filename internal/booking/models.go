package booking

import "time"

// TourBooking ties a user to a property viewing slot. PropertyType selects
// which table the property summary is loaded from.
type TourBooking struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	PropertyID   string    `gorm:"not null" json:"propertyId"`
	PropertyType string    `gorm:"not null" json:"propertyType"` // rental or buy
	UserID       string    `gorm:"not null;index" json:"userId"`
	TourDate     time.Time `gorm:"not null" json:"tourDate"`
	Status       string    `gorm:"not null;default:'pending'" json:"status"` // pending, confirmed, cancelled
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (TourBooking) TableName() string { return "marketplace.tour_bookings" }

func (b *TourBooking) OwnerID() string { return b.UserID }

// PropertySummary is the slim projection attached to a user's booking list.
// Nil when the underlying property has been removed.
type PropertySummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Images   []string `json:"images"`
}
