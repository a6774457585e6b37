package agent

import "time"

// Application is a request to be approved as a listing agent. Reviewed out
// of band; status moves from pending to approved or rejected.
type Application struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"not null" json:"firstName"`
	LastName      string    `gorm:"not null" json:"lastName"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `gorm:"not null" json:"phone"`
	Experience    int       `gorm:"not null" json:"experience"`
	LicenseNumber string    `gorm:"not null" json:"licenseNumber"`
	About         string    `json:"about"`
	Status        string    `gorm:"not null;default:'pending'" json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Application) TableName() string { return "marketplace.agent_applications" }
