package sender

import (
	"context"
	"time"
)

// SendResult describes a delivered message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender delivers one message to one recipient per call.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (SendResult, error)
}
