package sitecontent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmitContactMessage stores an inbound contact-form message and, when a mail
// queue is configured, enqueues a notification for the site operators. A
// failed enqueue does not fail the submission; the message is already
// persisted.
func (s *service) SubmitContactMessage(ctx context.Context, req ContactRequest) (*ContactMessage, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, NewValidationError("name, email and message are all required")
	}

	msg := &ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.mailQueue != nil {
		_ = s.mailQueue.Enqueue(ctx, OutboundMail{
			To:      req.Email,
			Subject: fmt.Sprintf("New contact message from %s", req.Name),
			Body:    req.Message,
		})
	}

	return msg, nil
}
