package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and verifies the signed identity token carried in the
// token cookie. Tokens are not persisted server-side: validity is proven
// solely by signature and expiry, so logout cannot revoke an outstanding
// token before it expires.
type TokenService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewTokenService creates a new TokenService. Tokens are valid for one hour.
func NewTokenService(jwtSecret string) *TokenService {
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Hour,
	}
}

// Issue signs the supplied identity claims into a token with a fixed
// expiry. The claims must include an email field; the handler checks that
// before calling here. The input map is not mutated.
func (s *TokenService) Issue(identity map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	claims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning the embedded claims.
// Bad signatures and expired tokens come back as errors, never panics, so
// the middleware can turn them into an Unauthorized response.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// TTL reports how long issued tokens remain valid. The cookie MaxAge
// mirrors it.
func (s *TokenService) TTL() time.Duration {
	return s.tokenTTL
}
