package agent

import (
	"log"

	"github.com/HavenEstates/HE-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "marketplace"); err != nil {
		log.Fatal("Failed to ensure schema marketplace: ", err)
	}

	if err := db.DB.AutoMigrate(&Application{}); err != nil {
		log.Fatal("Failed to auto-migrate agent application tables: ", err)
	}
}
