package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/diagnosis-server/internal/model"
)

// Claims represents JWT claims with token type. The subject is the email.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements VerificationTokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

var _ model.VerificationTokenManager = (*JWT)(nil)

const typeVerification = "email_verification"

// NewJWT creates a JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// GenerateVerificationToken creates a token proving control of email.
func (j *JWT) GenerateVerificationToken(email string) (string, error) {
	if email == "" {
		return "", errors.New("email is required")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		TokenType: typeVerification,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign verification token: %w", err)
	}

	return tokenString, nil
}

// ParseVerificationToken validates the token and returns its email.
func (j *JWT) ParseVerificationToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("failed to parse verification token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("verification token is invalid")
	}
	if claims.TokenType != typeVerification {
		return "", fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("verification token has no subject")
	}
	return claims.Subject, nil
}
