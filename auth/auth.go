package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 24 * time.Hour

// BcryptCost matches the original deployment's hashes so existing admin
// records keep verifying.
const BcryptCost = 10

// NewAdminID creates a unique identifier for an admin record
func NewAdminID() string {
	return uuid.New().String()
}

// HashPassword creates a one-way bcrypt hash of a password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a password against a stored bcrypt hash
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken issues a signed bearer token embedding the admin ID,
// valid for TokenTTL from now
func GenerateToken(adminID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"adminId": adminID,
		"exp":     jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token's signature and expiry and returns
// the embedded admin ID
func VerifyToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	adminID, ok := claims["adminId"].(string)
	if !ok || adminID == "" {
		return "", ErrInvalidToken
	}
	return adminID, nil
}
