package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestInspectReadsAuthServiceClaims(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	token := sign(t, jwt.MapClaims{
		"user_id":  7,
		"username": "alice",
		"role":     "admin",
		"exp":      now.Add(time.Hour).Unix(),
	})

	claims, err := Inspect(token, now)
	require.NoError(t, err)

	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(7), *claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.False(t, claims.Expired)
}

func TestInspectLegacyUserIDAndExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	token := sign(t, jwt.MapClaims{
		"userID": 3,
		"role":   "user",
		"exp":    now.Add(-time.Minute).Unix(),
	})

	claims, err := Inspect(token, now)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(3), *claims.UserID)
	assert.True(t, claims.Expired)
}

func TestInspectRejectsGarbage(t *testing.T) {
	_, err := Inspect("", time.Now())
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = Inspect("not-a-jwt", time.Now())
	assert.Error(t, err)
}
