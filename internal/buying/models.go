package buying

import (
	"time"

	"github.com/lib/pq"
)

// BuyProperty is a for-sale listing with construction and builder detail.
type BuyProperty struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Title              string         `gorm:"not null" json:"title"`
	Description        string         `gorm:"not null" json:"description"`
	Price              float64        `gorm:"not null" json:"price"`
	Location           string         `gorm:"not null" json:"location"`
	Bedrooms           int            `json:"bedrooms"`
	Bathrooms          int            `json:"bathrooms"`
	Area               float64        `json:"area"`
	PropertyType       string         `json:"propertyType"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities          pq.StringArray `gorm:"type:text[]" json:"amenities"`
	YearBuilt          int            `json:"yearBuilt"`
	ParkingSpaces      int            `gorm:"default:0" json:"parkingSpaces"`
	PropertyTax        float64        `json:"propertyTax"`
	ConstructionStatus string         `gorm:"not null" json:"constructionStatus"` // ready, underConstruction, preConstruction
	Possession         *time.Time     `json:"possession"`
	Builder            string         `json:"builder"`
	ReraID             string         `json:"reraId"`
	FloorPlan          pq.StringArray `gorm:"type:text[]" json:"floorPlan"`
	AgentID            string         `gorm:"not null" json:"agentId"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (BuyProperty) TableName() string { return "marketplace.buy_properties" }

func (p *BuyProperty) OwnerID() string { return p.AgentID }
