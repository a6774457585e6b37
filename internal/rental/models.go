package rental

import (
	"time"

	"github.com/lib/pq"
)

// RentalProperty is a long-term rental listing. AgentID records the listing
// agent at creation time and is the owner field for mutation authorization.
type RentalProperty struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"not null" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	Location      string         `gorm:"not null" json:"location"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	Area          float64        `json:"area"`
	PropertyType  string         `json:"propertyType"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	AvailableFrom time.Time      `json:"availableFrom"`
	MinimumLease  int            `json:"minimumLease"`
	Deposit       float64        `json:"deposit"`
	PetsAllowed   bool           `gorm:"default:false" json:"petsAllowed"`
	Furnished     bool           `gorm:"default:false" json:"furnished"`
	Utilities     pq.StringArray `gorm:"type:text[]" json:"utilities"`
	AgentID       string         `gorm:"not null" json:"agentId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (RentalProperty) TableName() string { return "marketplace.rental_properties" }

func (p *RentalProperty) OwnerID() string { return p.AgentID }
