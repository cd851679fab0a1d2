// Package sender holds the outbound notification boundary clients. Both
// channels are treated as fallible and slow; callers decide about retries
// and circuit breaking.
package sender

import "context"

// SMSSender delivers a text message. The bool result reports provider
// acceptance; a non-nil error means the attempt itself blew up (transport
// failure, timeout) rather than being rejected.
type SMSSender interface {
	Send(ctx context.Context, to, body string) (bool, error)
}

// EmailSender delivers an email with an optional HTML alternative part.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body, html string) (bool, error)
}
