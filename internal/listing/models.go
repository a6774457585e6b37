package listing

import (
	"time"

	"github.com/lib/pq"
)

type Address struct {
	StreetAddress string `gorm:"not null" json:"streetAddress"`
	City          string `gorm:"not null" json:"city"`
	State         string `gorm:"not null" json:"state"`
	ZipCode       string `gorm:"not null" json:"zipCode"`
}

// Details uses pointers so an omitted field is distinguishable from an
// explicit zero: a studio has 0 bedrooms, but a submission that never
// mentions bedrooms is incomplete.
type Details struct {
	Bedrooms  *int     `json:"bedrooms"`
	Bathrooms *int     `json:"bathrooms"`
	Area      *float64 `json:"area"`
}

// Listing is a property an owner submits for sale or rent. PostedBy is the
// authenticated identity at submission time; listings have no later
// mutation routes, so creation is the only place ownership is recorded.
type Listing struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	ListFor      string         `gorm:"not null" json:"listFor"` // Sale or Rent
	PropertyType string         `gorm:"not null" json:"propertyType"`
	AskingPrice  float64        `gorm:"not null" json:"askingPrice"`
	Address      Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Details      Details        `gorm:"embedded;embeddedPrefix:detail_" json:"propertyDetails"`
	Description  string         `gorm:"not null" json:"description"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	PostedBy     string         `gorm:"not null" json:"postedBy"`
	PostedAt     time.Time      `json:"postedAt"`
}

func (Listing) TableName() string { return "marketplace.listings" }

func (l *Listing) OwnerID() string { return l.PostedBy }
