package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTCustomClaims содержит пользовательские поля для токена администратора
type JWTCustomClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService предоставляет методы для работы с JWT
type JWTService struct {
	secretKey     string
	expirationHrs int
}

// NewJWTService создает новый сервис JWT
func NewJWTService(secretKey string, expirationHrs int) (*JWTService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("JWT secret key is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = 24
	}
	return &JWTService{
		secretKey:     secretKey,
		expirationHrs: expirationHrs,
	}, nil
}

// GenerateToken создает подписанный токен для администратора
func (s *JWTService) GenerateToken(adminID uint, username string) (string, error) {
	now := time.Now()
	claims := &JWTCustomClaims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHrs) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (s *JWTService) ParseToken(tokenString string) (*JWTCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
