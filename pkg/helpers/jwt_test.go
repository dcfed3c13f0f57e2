package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, exp, err := svc.Issue(42, "gamer@example.com", entity.RoleModerator)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "gamer@example.com", claims.Email())
	assert.Equal(t, entity.RoleModerator, claims.Role)
	assert.True(t, claims.Role.IsModerator())
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, _, err := svc.Issue(1, "a@b.cl", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, _, err := issuer.Issue(1, "a@b.cl", entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenMissingIdentity(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	// A token without a user id must be rejected even if validly signed.
	token, _, err := svc.Issue(0, "a@b.cl", entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
