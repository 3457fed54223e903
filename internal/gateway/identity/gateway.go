package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
)

// restaurantClaims формат токена auth-сервиса: ID ресторана в claim "id".
type restaurantClaims struct {
	RestaurantID string `json:"id"`
	jwt.RegisteredClaims
}

// Gateway проверяет креденшел ресторана и возвращает его identity.
// Auth-сервис (внешний коллаборатор) выпускает HS256-токены с общим
// секретом; здесь токен только проверяется, никогда не выпускается.
type Gateway struct {
	secret []byte
	parser *jwt.Parser
}

func New(secret []byte) *Gateway {
	return &Gateway{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Resolve возвращает ID ресторана из креденшела.
// ctx принимается для симметрии с остальными gateway, проверка локальная.
func (g *Gateway) Resolve(_ context.Context, credential string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		IdentityResolutionsTotal.WithLabelValues(resultRejected).Inc()
		return "", ErrMissingCredential
	}

	claims := &restaurantClaims{}
	_, err := g.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	})
	if err != nil {
		IdentityResolutionsTotal.WithLabelValues(resultRejected).Inc()
		return "", fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	if strings.TrimSpace(claims.RestaurantID) == "" {
		IdentityResolutionsTotal.WithLabelValues(resultRejected).Inc()
		return "", fmt.Errorf("%w: token carries no restaurant id", ErrInvalidCredential)
	}

	IdentityResolutionsTotal.WithLabelValues(resultOK).Inc()
	return claims.RestaurantID, nil
}
