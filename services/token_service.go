package services

import (
	"BistroBoss/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL matches the lifetime the frontend was built around.
const tokenTTL = 5 * time.Hour

// TokenService issues and verifies the bearer tokens used on every guarded route.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate signs a token carrying the caller's email.
func (t *TokenService) Generate(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates signature and expiry and returns the email claim.
func (t *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", utils.NewCustomError(http.StatusUnauthorized, "unauthorized access")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", utils.NewCustomError(http.StatusUnauthorized, "unauthorized access")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", utils.NewCustomError(http.StatusUnauthorized, "unauthorized access")
	}
	return email, nil
}
