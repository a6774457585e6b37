package seeds

import (
	"errors"
	"fmt"
	"log"

	"github.com/HavenEstates/HE-Backend/internal/auth"
	"github.com/HavenEstates/HE-Backend/internal/db"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const agentEmail = "agent@havenestates.dev"

// SeedAgentUser creates the demo listing agent all seeded inventory is
// attributed to, returning its id.
func SeedAgentUser() (string, error) {
	var existing auth.User
	err := db.DB.First(&existing, "email = ?", agentEmail).Error
	if err == nil {
		log.Printf("⚠️ Agent user exists, skipping: %s", agentEmail)
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("DB error on agent user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("DemoAgent123!"), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash agent password: %w", err)
	}

	user := auth.User{
		ID:           uuid.NewString(),
		Name:         "Demo Agent",
		Email:        agentEmail,
		PasswordHash: string(hashed),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return "", fmt.Errorf("failed to create agent user: %w", err)
	}

	log.Printf("✅ Seeded agent user %s", agentEmail)
	return user.ID, nil
}
