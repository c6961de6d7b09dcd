package notify

import "context"

// EmailTransport delivers a rendered email. Implementations must honor
// context cancellation as a best effort; a timed-out send counts as the
// channel's failure.
type EmailTransport interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// PushTransport delivers a rendered push message to a single device
// token.
type PushTransport interface {
	Send(ctx context.Context, token string, content PushContent) error
}
