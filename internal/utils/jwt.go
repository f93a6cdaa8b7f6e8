package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/models"
)

// Claims represents the JWT claims. Only the user id travels in the token;
// the role is read back from the directory on every request so a role change
// takes effect on the very next call.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateTokens generates both access and refresh tokens for a user.
func GenerateTokens(user *models.User, cfg *config.Config) (accessToken string, refreshToken string, err error) {
	accessToken, err = generateToken(user, cfg.JWTSecret,
		time.Duration(cfg.JWTExpirationMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = generateToken(user, cfg.JWTRefreshSecret,
		time.Duration(cfg.JWTRefreshExpirationHours)*time.Hour)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func generateToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a JWT token.
func ValidateToken(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
