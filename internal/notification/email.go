package notification

import (
	"context"

	"go.uber.org/zap"
)

// EmailSink writes outgoing mail to the application log. It stands in for a
// real mail provider; swap it for an SMTP or API-backed Sink in production.
type EmailSink struct {
	logger *zap.Logger
}

// NewEmailSink creates a log-backed email sink.
func NewEmailSink(logger *zap.Logger) *EmailSink {
	return &EmailSink{logger: logger}
}

// Send logs the message instead of dispatching real mail.
func (s *EmailSink) Send(ctx context.Context, msg Message) error {
	s.logger.Info("sending email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
