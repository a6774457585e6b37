package seeds

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/HavenEstates/HE-Backend/internal/buying"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/rental"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func sampleRentals(agentID string) []rental.RentalProperty {
	return []rental.RentalProperty{
		{
			Title:         "Modern Downtown Apartment",
			Description:   "Luxurious 2-bedroom apartment in the heart of downtown with city views",
			Price:         2500,
			Location:      "123 Downtown Ave, City Center",
			Bedrooms:      2,
			Bathrooms:     2,
			Area:          1200,
			PropertyType:  "apartment",
			Images:        pq.StringArray{"apartment1.jpg"},
			Amenities:     pq.StringArray{"Parking", "Gym", "Pool", "Security"},
			AvailableFrom: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			MinimumLease:  12,
			Deposit:       2500,
			AgentID:       agentID,
		},
		{
			Title:         "Cozy Studio near University",
			Description:   "Perfect for students, fully furnished studio apartment near campus",
			Price:         1200,
			Location:      "456 College St, University District",
			Bedrooms:      0,
			Bathrooms:     1,
			Area:          500,
			PropertyType:  "studio",
			Images:        pq.StringArray{"studio1.jpg"},
			Amenities:     pq.StringArray{"Furnished", "Internet", "Laundry"},
			AvailableFrom: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
			MinimumLease:  6,
			Deposit:       1200,
			Furnished:     true,
			AgentID:       agentID,
		},
		{
			Title:         "Spacious Family Home",
			Description:   "Beautiful 4-bedroom house with large backyard and modern amenities",
			Price:         3500,
			Location:      "789 Suburban Lane, Green Valley",
			Bedrooms:      4,
			Bathrooms:     3,
			Area:          2500,
			PropertyType:  "house",
			Images:        pq.StringArray{"house1.jpg"},
			Amenities:     pq.StringArray{"Garage", "Garden", "Central AC", "Fireplace"},
			AvailableFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			MinimumLease:  12,
			Deposit:       3500,
			PetsAllowed:   true,
			AgentID:       agentID,
		},
	}
}

func sampleBuyProperties(agentID string) []buying.BuyProperty {
	return []buying.BuyProperty{
		{
			Title:              "Sunlit Corner Condo",
			Description:        "Bright 3-bedroom condo with floor-to-ceiling windows",
			Price:              675000,
			Location:           "21 Harbor View, Marina District",
			Bedrooms:           3,
			Bathrooms:          2,
			Area:               1650,
			PropertyType:       "condo",
			Images:             pq.StringArray{"condo1.jpg"},
			Amenities:          pq.StringArray{"Concierge", "Rooftop Deck", "Parking"},
			YearBuilt:          2019,
			ParkingSpaces:      1,
			ConstructionStatus: "ready",
			Builder:            "Harborline Homes",
			AgentID:            agentID,
		},
		{
			Title:              "Pre-construction Garden Villa",
			Description:        "4-bedroom villa in a gated community, possession next year",
			Price:              920000,
			Location:           "88 Orchard Way, Green Valley",
			Bedrooms:           4,
			Bathrooms:          4,
			Area:               3200,
			PropertyType:       "villa",
			Images:             pq.StringArray{"villa1.jpg"},
			Amenities:          pq.StringArray{"Clubhouse", "Pool", "Play Area"},
			ParkingSpaces:      2,
			ConstructionStatus: "preConstruction",
			Builder:            "Green Valley Estates",
			AgentID:            agentID,
		},
	}
}

// SeedRentals inserts the sample rental inventory, skipping titles that are
// already present.
func SeedRentals(agentID string) error {
	rentals := sampleRentals(agentID)
	for _, p := range rentals {
		var existing rental.RentalProperty
		err := db.DB.First(&existing, "title = ?", p.Title).Error
		if err == nil {
			log.Printf("⚠️ Rental exists, skipping: %s", p.Title)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on rental %s: %w", p.Title, err)
		}

		p.ID = uuid.NewString()
		if err := db.DB.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to create rental %s: %w", p.Title, err)
		}
	}
	log.Printf("✅ Seeded %d rentals", len(rentals))
	return nil
}

// SeedBuyProperties inserts the sample for-sale inventory, skipping titles
// that are already present.
func SeedBuyProperties(agentID string) error {
	properties := sampleBuyProperties(agentID)
	for _, p := range properties {
		var existing buying.BuyProperty
		err := db.DB.First(&existing, "title = ?", p.Title).Error
		if err == nil {
			log.Printf("⚠️ Buy property exists, skipping: %s", p.Title)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("DB error on buy property %s: %w", p.Title, err)
		}

		p.ID = uuid.NewString()
		if err := db.DB.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to create buy property %s: %w", p.Title, err)
		}
	}
	log.Printf("✅ Seeded %d buy properties", len(properties))
	return nil
}
