package property

import (
	"log"

	"github.com/HavenEstates/HE-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "marketplace"); err != nil {
		log.Fatal("Failed to ensure schema marketplace: ", err)
	}

	if err := db.DB.AutoMigrate(&Property{}); err != nil {
		log.Fatal("Failed to auto-migrate property tables: ", err)
	}
}
