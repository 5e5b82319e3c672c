package token

import (
	"fmt"
	"time"

	"taskmanager-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the user a session token belongs to. Session tokens carry no
// expiry; they stay valid until removed from the user's session list.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Signer issues and parses HS256 session tokens with a fixed secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns a signed token for userID. Every call yields a distinct token.
func (s *Signer) Sign(userID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Parse verifies tokenString and returns the user ID it carries.
func (s *Signer) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", apperror.ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", apperror.ErrInvalidToken
	}

	return claims.UserID, nil
}
