package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
)

// TokenIssuer は HS256 署名のセッショントークンを発行・検証します。
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer は TokenIssuer を生成します。
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue は actor のセッショントークンを発行します。
func (i *TokenIssuer) Issue(actor account.Actor, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)
	claims := sessionClaims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify はトークンを検証し、actor を復元します。
func (i *TokenIssuer) Verify(tokenString string) (account.Actor, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return account.Actor{}, ErrTokenExpired
		}
		return account.Actor{}, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" || claims.Role == "" {
		return account.Actor{}, ErrInvalidToken
	}

	return account.Actor{ID: claims.Subject, Role: account.Role(claims.Role)}, nil
}
