package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuestSession(t *testing.T) {
	s := GuestSession()
	assert.True(t, s.IsGuest())
	assert.Equal(t, GuestUserKey, s.CartKey())

	_, ok := s.UserKey()
	assert.False(t, ok)
}

func TestUserSession(t *testing.T) {
	s := UserSession("user-1")
	assert.False(t, s.IsGuest())
	assert.Equal(t, "user-1", s.CartKey())

	key, ok := s.UserKey()
	assert.True(t, ok)
	assert.Equal(t, "user-1", key)
}

func TestUserSessionFallsBackToGuest(t *testing.T) {
	// A failed lookup must not masquerade as a real identity.
	assert.True(t, UserSession("").IsGuest())
	assert.True(t, UserSession(GuestUserKey).IsGuest())
}
