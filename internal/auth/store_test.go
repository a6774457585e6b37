package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Validation runs before any database access, so these cases exercise a
// store with no connection at all.
func TestCreateValidation(t *testing.T) {
	store := NewStore(nil)

	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		wantField string
	}{
		{"missing name", "", "alice@x.com", "secret1", "name"},
		{"bad email", "Alice", "not-an-email", "secret1", "email"},
		{"no at sign", "Alice", "alice.x.com", "secret1", "email"},
		{"short password", "Alice", "alice@x.com", "12345", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(tt.userName, tt.email, tt.password)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	store := NewStore(nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	user := &User{PasswordHash: string(hashed)}

	if !store.VerifyPassword(user, "secret1") {
		t.Error("expected correct password to verify")
	}
	if store.VerifyPassword(user, "wrong-password") {
		t.Error("expected wrong password to fail")
	}
	if store.VerifyPassword(user, "") {
		t.Error("expected empty password to fail")
	}
}

// Two users with the same password must not share a stored hash; the salt
// is per-record.
func TestHashesAreSalted(t *testing.T) {
	a, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	b, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	if string(a) == string(b) {
		t.Error("expected distinct hashes for identical passwords")
	}
}
