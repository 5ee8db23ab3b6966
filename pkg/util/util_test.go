package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAlphanumeric(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]+$`)

	for _, n := range []int{1, 9, 32} {
		s := RandomAlphanumeric(n)
		assert.Len(t, s, n)
		assert.Regexp(t, pattern, s)
	}

	// Two consecutive draws colliding at this length would be astronomical.
	assert.NotEqual(t, RandomAlphanumeric(16), RandomAlphanumeric(16))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword("password123", hash))
	assert.False(t, CheckPassword("password124", hash))
	assert.False(t, CheckPassword("password123", "not-a-hash"))
}

func TestAvatarURL(t *testing.T) {
	url := AvatarURL("Alice Johnson")
	assert.Contains(t, url, "ui-avatars.com")
	assert.Contains(t, url, "Alice")
	assert.NotContains(t, url, " ", "names must be escaped")
}
