package domain

import "time"

// ResetRequest tracks one in-flight password reset. The one-time code is
// stored only as a bcrypt hash; the row is deleted after a successful
// password commit, which is what enforces single use.
type ResetRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	OTPHash   string    `json:"-"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpiredAt reports whether the request is older than the given window at
// time now. Rows have no expiry column; staleness is checked on read.
func (r *ResetRequest) ExpiredAt(now time.Time, window time.Duration) bool {
	return now.Sub(r.CreatedAt) > window
}
