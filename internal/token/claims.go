package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the slice of the token payload this client reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Email extracts the email claim from a token payload without verifying the
// signature. The result is for display and routing only; the server remains
// the authority on whether the token is valid.
func Email(tok string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return "", fmt.Errorf("decoding token: %w", err)
	}
	if claims.Email == "" {
		return "", errors.New("token has no email claim")
	}
	return claims.Email, nil
}
