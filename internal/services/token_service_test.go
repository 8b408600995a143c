package services_test

import (
	"testing"
	"time"

	"carservice/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret")

	identity := map[string]interface{}{
		"email": "a@x.com",
		"name":  "Test User",
	}

	tokenString, err := tokens.Issue(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokens.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "Test User", claims["name"])

	// Expiry is one hour out from issuance.
	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)

	// Issue must not mutate the caller's claims map.
	assert.NotContains(t, identity, "exp")
}

func TestTokenService_VerifyRejectsExpired(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret")

	// Sign a token that expired a minute ago with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)

	claims, err := tokens.Verify(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyRejectsBadSignature(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("some_other_secret"))
	assert.NoError(t, err)

	claims, err := tokens.Verify(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret")

	claims, err := tokens.Verify("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
