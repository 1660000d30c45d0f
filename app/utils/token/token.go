package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Principal is the verified identity a request acts as. Handlers receive it
// explicitly through the request context instead of re-parsing the token.
type Principal struct {
	UserID string
	Role   string
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Maker issues and verifies HS256-signed bearer tokens.
type Maker struct {
	secret []byte
	expiry time.Duration
}

func NewMaker(secret string, expiry time.Duration) (*Maker, error) {
	if secret == "" {
		return nil, errors.New("JWT secret must not be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Maker{secret: []byte(secret), expiry: expiry}, nil
}

func (m *Maker) Issue(userID, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.expiry)

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and decodes the claims into a Principal.
func (m *Maker) Verify(tokenString string) (*Principal, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Principal{UserID: claims.Subject, Role: claims.Role}, nil
}
