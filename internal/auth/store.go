package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("user already exists with this email")
	ErrUserNotFound   = errors.New("user not found")
)

// ValidationError reports a rejected input field. Routes map it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// Store owns User persistence. Passwords go in as plaintext exactly once,
// at Create or UpdatePassword, and are replaced by a salted bcrypt hash
// before anything touches the database. No other code path writes the hash
// column, so re-saving a record never re-hashes an already-hashed value.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create validates and persists a new user. Email comparison is
// case-insensitive: the address is lowercased before the uniqueness check
// and before storage. A registration race on the same email is resolved by
// the unique index, not by application locking.
func (s *Store) Create(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "Name is required"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "Please fill a valid email address"}
	}
	if len(password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}

	var existing User
	if err := s.db.First(&existing, "email = ?", email).Error; err == nil {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Second concurrent registration loses at the unique index.
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindByEmail(email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindByID(id string) (*User, error) {
	var user User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword runs the constant-work bcrypt comparison. It never
// decrypts anything; a stored hash is one-way.
func (s *Store) VerifyPassword(user *User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}

// UpdatePassword re-hashes and writes only the hash column. This is the one
// place an existing user's hash is ever recomputed.
func (s *Store) UpdatePassword(user *User, newPassword string) error {
	if len(newPassword) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("password_hash", string(hashed)).Error
}
