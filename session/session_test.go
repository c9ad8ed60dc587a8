package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-secret"))
	assert.NoError(t, err)
	return signed
}

func TestFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	raw := signedToken(t, jwt.MapClaims{
		"username": "manager@example.com",
		"role":     "MANAGER",
		"exp":      exp.Unix(),
	})

	sess, err := FromToken(raw)

	assert.NoError(t, err)
	assert.Equal(t, raw, sess.Token)
	assert.Equal(t, "manager@example.com", sess.Username)
	assert.Equal(t, "MANAGER", sess.Role)
	assert.Equal(t, exp.Unix(), sess.ExpiresAt.Unix())
	assert.True(t, sess.Valid())
}

func TestFromTokenOpaque(t *testing.T) {
	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.False(t, (*Session)(nil).Valid())
	assert.False(t, (&Session{}).Valid())
	assert.True(t, (&Session{Token: "t"}).Valid())
	assert.True(t, (&Session{Token: "t", ExpiresAt: time.Now().Add(time.Minute)}).Valid())
	assert.False(t, (&Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)}).Valid())
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore()

	live := store.Put(&Session{Token: "t", ExpiresAt: time.Now().Add(time.Minute)})
	got, err := store.Get(live)
	assert.NoError(t, err)
	assert.Equal(t, "t", got.Token)

	expired := store.Put(&Session{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)})
	_, err = store.Get(expired)
	assert.ErrorIs(t, err, ErrExpired)

	// Expired sessions are evicted on access.
	_, err = store.Get(expired)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrExpired)

	_, err = store.Get("missing")
	assert.Error(t, err)
}
