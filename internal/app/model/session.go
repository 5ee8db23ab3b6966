package model

// GuestUserKey is the reserved storage key for unauthenticated carts. It
// exists only at the storage boundary; callers pass a Session instead of the
// raw sentinel.
const GuestUserKey = "guest-user"

// Session identifies the caller of cart and order operations as either a
// known user or an anonymous guest. The zero value is a guest session.
type Session struct {
	userKey string
}

// GuestSession returns the anonymous session.
func GuestSession() Session {
	return Session{}
}

// UserSession returns a session for the given opaque user key. An empty or
// sentinel key falls back to the guest session so a failed lookup can never
// masquerade as a real user.
func UserSession(userKey string) Session {
	if userKey == "" || userKey == GuestUserKey {
		return Session{}
	}
	return Session{userKey: userKey}
}

// IsGuest reports whether the session is anonymous.
func (s Session) IsGuest() bool {
	return s.userKey == ""
}

// UserKey returns the user key and whether the session belongs to a real user.
func (s Session) UserKey() (string, bool) {
	return s.userKey, s.userKey != ""
}

// CartKey returns the storage key under which this session's cart lives.
func (s Session) CartKey() string {
	if s.userKey == "" {
		return GuestUserKey
	}
	return s.userKey
}
