package jwtmanager

import (
	"errors"

	"tmdscreen-service/internal/app/config"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager verifies clinician bearer tokens issued by the identity
// provider. Tokens are HS256-signed with a shared secret.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(cfg *config.InternalConfig) *JWTManager {
	return &JWTManager{secret: []byte(cfg.JWT.Secret)}
}

// VerifyToken returns the token subject when the signature and standard
// claims check out.
func (m *JWTManager) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return "", errors.New("token subject is empty")
	}
	return claims.Subject, nil
}
