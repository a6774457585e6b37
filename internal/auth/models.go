package auth

import "time"

// User is the persisted identity record. The bcrypt hash never leaves the
// server: it is excluded from every JSON projection.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "app_auth.users" }

// Summary is the client-facing projection of a User.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}
