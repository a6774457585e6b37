package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed structure, or expiry. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity a verified token carries.
type Claims struct {
	UserID string
	Email  string
}

// Service issues and verifies signed bearer tokens. Verification is fully
// stateless: no store is consulted and expiry is the only invalidation path.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService builds a Service around a symmetric signing secret. An empty
// secret is a configuration error, never a fallback.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	if ttl == 0 {
		ttl = time.Hour
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue produces a signed token embedding the user's id and email with a
// fixed expiry.
func (s *Service) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a raw token and returns the
// embedded identity.
func (s *Service) Verify(raw string) (Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	id, _ := mapClaims["id"].(string)
	if id == "" {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mapClaims["email"].(string)

	return Claims{UserID: id, Email: email}, nil
}
