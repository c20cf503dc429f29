package notification

import "context"

// Message is a single notification to be delivered to a recipient.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sink delivers notifications. Delivery is best effort: callers must never
// fail a business operation because a Send returned an error.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}
