package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daygo-app/daygo/pkg/security"
)

func Test_JWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	claims := security.NewTokenClaims("daygo", "daygo", "user-1", "pro", "role-member", time.Now().Add(time.Hour).Unix())
	token, err := security.GenerateJWT(claims, secret)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := security.VerifyToken(token, secret)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "user-1", parsed.GetUser())
	assert.Equal(t, "daygo", parsed.Appid)
	assert.Equal(t, "pro", parsed.PlanID())
	assert.Equal(t, "role-member", parsed.GetRole())
}

func Test_JWTExpired(t *testing.T) {
	secret := []byte("test-secret")

	claims := security.NewTokenClaims("daygo", "daygo", "user-1", "free", "role-member", time.Now().Add(-time.Hour).Unix())
	token, err := security.GenerateJWT(claims, secret)
	if err != nil {
		t.Fatal(err)
	}

	_, err = security.VerifyToken(token, secret)
	assert.Error(t, err)
}

func Test_JWTWrongSecret(t *testing.T) {
	claims := security.NewTokenClaims("daygo", "daygo", "user-1", "free", "role-member", time.Now().Add(time.Hour).Unix())
	token, err := security.GenerateJWT(claims, []byte("secret-a"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = security.VerifyToken(token, []byte("secret-b"))
	assert.Error(t, err)
}
