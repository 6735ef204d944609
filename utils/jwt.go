package utils

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenVerifier resolves a bearer token to the caller's user ID.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// JWTVerifier checks HS256 tokens whose subject is the user ID.
type JWTVerifier struct {
	Secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{Secret: []byte(secret)}
}

// GenerateToken creates a signed JWT token for the given subject.
// The token expires after the specified duration.
func (v *JWTVerifier) GenerateToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.Secret)
}

// VerifyToken parses and validates a token string and returns its subject.
func (v *JWTVerifier) VerifyToken(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
