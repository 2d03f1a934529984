package mail

import "context"

// Message is a plain-text mail to a single recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines the interface for sending notification mail. Services hold
// this interface, never a concrete transport, so tests can inject a fake.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
