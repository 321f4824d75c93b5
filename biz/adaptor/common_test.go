package adaptor

import (
	"context"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(""))
	require.NoError(t, err)
	return token
}

func TestResolveIdentityNoContext(t *testing.T) {
	id := ResolveIdentity(context.Background())
	assert.Equal(t, IdentityAnonymous, id.Kind)
}

func TestResolveIdentityNoHeader(t *testing.T) {
	ctx := InjectContext(context.Background(), &app.RequestContext{})
	id := ResolveIdentity(ctx)
	assert.Equal(t, IdentityAnonymous, id.Kind)
}

func TestResolveIdentityValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": "u42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	c := &app.RequestContext{}
	c.Request.Header.Set("Authorization", "Bearer "+token)
	id := ResolveIdentity(InjectContext(context.Background(), c))
	assert.Equal(t, IdentityResolved, id.Kind)
	assert.Equal(t, "u42", id.UID)
}

func TestResolveIdentityGarbageToken(t *testing.T) {
	c := &app.RequestContext{}
	c.Request.Header.Set("Authorization", "Bearer not.a.token")
	id := ResolveIdentity(InjectContext(context.Background(), c))
	assert.Equal(t, IdentityInvalid, id.Kind)
	assert.Equal(t, ReasonInvalid, id.Reason)
}

func TestResolveIdentityExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": "u42",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	id := ResolveIdentityFromJWT(token, "")
	assert.Equal(t, IdentityInvalid, id.Kind)
	assert.Equal(t, ReasonExpired, id.Reason)
}

func TestResolveIdentityMissingUserId(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	id := ResolveIdentityFromJWT(token, "")
	assert.Equal(t, IdentityInvalid, id.Kind)
	assert.Equal(t, ReasonInvalid, id.Reason)
}

func TestResolveIdentityWrongSecret(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	id := ResolveIdentityFromJWT(token, "expected-secret")
	assert.Equal(t, IdentityInvalid, id.Kind)
	assert.Equal(t, ReasonInvalid, id.Reason)
}
