package booking

import (
	"log"

	"github.com/HavenEstates/HE-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "marketplace"); err != nil {
		log.Fatal("Failed to ensure schema marketplace: ", err)
	}

	if err := db.DB.AutoMigrate(&TourBooking{}); err != nil {
		log.Fatal("Failed to auto-migrate booking tables: ", err)
	}
}
