package listing

import (
	"log"

	"github.com/HavenEstates/HE-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "marketplace"); err != nil {
		log.Fatal("Failed to ensure schema marketplace: ", err)
	}

	if err := db.DB.AutoMigrate(&Listing{}); err != nil {
		log.Fatal("Failed to auto-migrate listing tables: ", err)
	}
}
