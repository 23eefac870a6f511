package domain

import "time"

// Session is the server-side record backing a session cookie. The cookie
// alone never proves anything; this row is re-read on every protected
// request.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	Revoked   bool
	IP        string
	UserAgent string
	CreatedAt time.Time
}

// Live reports whether the session is usable at the given instant.
func (s Session) Live(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
