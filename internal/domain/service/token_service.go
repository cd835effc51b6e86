package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Claims defines the custom claims carried by access tokens.
// The registered subject is the student ID.
type Claims struct {
	Roles          []string `json:"roles"`
	EducationLevel string   `json:"education_level,omitempty"`
	jwt.RegisteredClaims
}

// StudentID parses the subject claim.
func (c *Claims) StudentID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "subject is not a student ID")
	}

	return id, nil
}

// TokenService validates the access tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateToken signs a token for the subject. Used by tooling and tests; production tokens come from the identity provider.
	GenerateToken(subject uuid.UUID, roles []string, ttl time.Duration) (string, error)
}
