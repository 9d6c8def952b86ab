// Package mailqueue provides an in-process queue for outbound notification
// mail. Messages are accepted without blocking the caller and handed to a
// delivery function from a background worker.
package mailqueue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// DeliverFunc sends one message. Returning an error logs the failure; the
// message is not retried.
type DeliverFunc func(ctx context.Context, mail sitecontent.OutboundMail) error

// Queue is a buffered in-process sitecontent.MailQueue.
type Queue struct {
	messages chan sitecontent.OutboundMail
	deliver  DeliverFunc
}

// ErrQueueFull is returned by Enqueue when the buffer is at capacity.
var ErrQueueFull = errors.New("mail queue is full")

// New creates a queue with the given buffer size. A nil deliver function
// logs each message instead of sending it, which is the development default.
func New(size int, deliver DeliverFunc) *Queue {
	if size <= 0 {
		size = 64
	}
	if deliver == nil {
		deliver = logDelivery
	}
	return &Queue{
		messages: make(chan sitecontent.OutboundMail, size),
		deliver:  deliver,
	}
}

// Enqueue accepts a message for delivery. It never blocks; when the buffer
// is full the message is dropped with an error.
func (q *Queue) Enqueue(ctx context.Context, mail sitecontent.OutboundMail) error {
	select {
	case q.messages <- mail:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers queued messages until the context is cancelled.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case mail := <-q.messages:
			if err := q.deliver(ctx, mail); err != nil {
				slog.Error("mail delivery failed", "to", mail.To, "subject", mail.Subject, "error", err)
			}
		}
	}
}

func logDelivery(_ context.Context, mail sitecontent.OutboundMail) error {
	slog.Info("outbound mail", "to", mail.To, "subject", mail.Subject)
	return nil
}
