package service

import "context"

// Mailer sends transactional email. Implementations must not block beyond
// the context's deadline.
type Mailer interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
