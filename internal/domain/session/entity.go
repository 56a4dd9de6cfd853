package session

import "time"

// Session is server-held state keyed by the opaque id carried in the
// client cookie. Expiry is absolute: fixed at creation, not slid on use.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
