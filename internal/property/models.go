package property

import (
	"time"

	"github.com/lib/pq"
)

// Property is a general marketplace listing that can be for sale, for rent,
// or both. PostedBy is set from the authenticated identity at creation and
// never changes afterwards.
type Property struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Price        float64        `gorm:"not null" json:"price"`
	Location     string         `gorm:"not null" json:"location"`
	Bedrooms     int            `json:"bedrooms"`
	Bathrooms    int            `json:"bathrooms"`
	Area         float64        `json:"area"`
	PropertyType string         `json:"propertyType"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities    pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	Status       string         `gorm:"not null" json:"status"` // forSale, forRent, both
	AgentID      string         `gorm:"not null" json:"agentId"`
	PostedBy     string         `gorm:"not null" json:"postedBy"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (Property) TableName() string { return "marketplace.properties" }

func (p *Property) OwnerID() string { return p.PostedBy }
