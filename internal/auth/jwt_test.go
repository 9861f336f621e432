package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medguides/internal/models"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	tok, jti, expiresAt, err := Sign("user-1", models.RoleEditor)
	require.NoError(t, err)
	require.NotEmpty(t, jti)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, models.RoleEditor, claims.Role)
	assert.Equal(t, jti, claims.JWTID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	tok, _, _, err := Sign("user-1", models.RoleViewer)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	_, err := Verify("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword(hash, "s3cret"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}
