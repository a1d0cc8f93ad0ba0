package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const formTokenPurpose = "form"

type FormClaims struct {
	Purpose string `json:"pur"`
	jwt.RegisteredClaims
}

// GenerateFormToken issues a short-lived token embedded in every rendered form
// and echoed back on submit.
func GenerateFormToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := FormClaims{
		Purpose: formTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign form token: %w", err)
	}
	return signed, nil
}

func ValidateFormToken(tokenStr string, secret string) error {
	token, err := jwt.ParseWithClaims(tokenStr, &FormClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*FormClaims)
	if !ok || !token.Valid || claims.Purpose != formTokenPurpose {
		return fmt.Errorf("invalid form token")
	}
	return nil
}

// RandomSecret is used when no form secret is configured; tokens then stop
// validating after a restart, which matches the volatile state they protect.
func RandomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
