package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: "u1", Role: domain.RoleVenue}

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, domain.RoleVenue, sess.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := tm.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
