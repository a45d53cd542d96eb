package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidate(t *testing.T) {
	r := NewRegistry(24 * time.Hour)

	token := r.Create(7)
	require.NotEmpty(t, token)

	userID, ok := r.Validate(token)
	require.True(t, ok)
	assert.Equal(t, 7, userID)
}

func TestValidate_UnknownToken(t *testing.T) {
	r := NewRegistry(24 * time.Hour)

	_, ok := r.Validate("no-such-token")
	assert.False(t, ok)
}

func TestValidate_ExpiredTokenEvictedLazily(t *testing.T) {
	r := NewRegistry(time.Hour)
	token := r.Create(1)

	// Move the clock past expiry; the stale entry stays resident until
	// the next validation attempt finds it.
	r.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, 1, r.Len())

	_, ok := r.Validate(token)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestDestroy_Idempotent(t *testing.T) {
	r := NewRegistry(time.Hour)
	token := r.Create(1)

	r.Destroy(token)
	_, ok := r.Validate(token)
	assert.False(t, ok)

	// Destroying again (or destroying garbage) is fine.
	r.Destroy(token)
	r.Destroy("garbage")
}

func TestCreate_TokensAreUnique(t *testing.T) {
	r := NewRegistry(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := r.Create(i)
		require.False(t, seen[token])
		seen[token] = true
	}
}
