package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every access token.
type Claims struct {
	UserID   uint   `json:"userId"`
	UserType string `json:"userType"`
	IsStaff  bool   `json:"isStaff"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, userType string, isStaff bool, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		IsStaff:  isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
