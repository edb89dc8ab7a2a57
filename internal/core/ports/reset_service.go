package ports

import "context"

// ResetRequestResult is returned by the request step. The plaintext OTP is
// never part of it; the code only exists in the user's inbox.
type ResetRequestResult struct {
	Email     string `json:"email"`
	RequestID string `json:"request_id"`
}

// ResetService drives the three-step password reset state machine:
// Requested -> Verified -> Consumed (row deleted on commit).
type ResetService interface {
	Request(ctx context.Context, email string) (*ResetRequestResult, error)
	Verify(ctx context.Context, email, otp, requestID string) error
	Commit(ctx context.Context, requestID, newPassword string) error
}

// ResetLimiter throttles reset requests per identity. Allow reports whether
// another request is permitted inside the current window.
type ResetLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}
