// Package auth выпускает и проверяет JWT, которыми клиенты подписывают запросы.
package auth

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const issuer = "crowdfund-service"

// ErrInvalidToken возвращается для подделанных, просроченных или неполных токенов.
var ErrInvalidToken = errors.New("invalid token")

// Claims: полезная нагрузка токена.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwtlib.RegisteredClaims
}

// Principal описывает аутентифицированного пользователя запроса.
type Principal struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

// GenerateToken выпускает подписанный HS256 токен с временем жизни ttl.
func GenerateToken(p Principal, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   p.UserID,
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse проверяет подпись и срок действия токена и возвращает Principal.
func Parse(token, secret string) (Principal, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Name}), jwtlib.WithIssuer(issuer))
	if err != nil {
		return Principal{}, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID <= 0 {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: claims.UserID, Username: claims.Username, IsAdmin: claims.IsAdmin}, nil
}
