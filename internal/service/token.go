package service

import (
	"time"

	"holistic/wellness-app/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

// jwtClaims defines the structure of the JWT payload. Both realms (user and
// admin) use the same shape; the Role claim tells them apart.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateToken creates a signed HS256 token for the given subject and role.
func generateToken(secret string, expiration time.Duration, subjectID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: subjectID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "wellness-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
