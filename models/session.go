package models

import "time"

// Session is an authenticated login session, keyed by its opaque token in
// the session store.
type Session struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	IPAddress string    `json:"-"`
	UserAgent string    `json:"-"`
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
