package main

import (
	"log"
	"os"

	"github.com/HavenEstates/HE-Backend/internal/auth"
	"github.com/HavenEstates/HE-Backend/internal/buying"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/HavenEstates/HE-Backend/internal/rental"
	"github.com/HavenEstates/HE-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	db.Connect(os.Getenv("DATABASE_URL"))

	auth.Init()
	rental.Init()
	buying.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
