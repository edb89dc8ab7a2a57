package ports

import "context"

// Mailer delivers a plaintext message to a single address. Implementations
// return domain.ErrMailRejected when the receiving server refuses the
// recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Notifier accepts best-effort notifications for asynchronous delivery.
// Enqueue never blocks the caller beyond channel capacity and failures are
// logged, not surfaced.
type Notifier interface {
	Enqueue(to, subject, body string)
}
