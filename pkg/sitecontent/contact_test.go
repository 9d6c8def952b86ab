package sitecontent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/repo/memory"
)

type captureQueue struct {
	sent []sitecontent.OutboundMail
}

func (q *captureQueue) Enqueue(_ context.Context, mail sitecontent.OutboundMail) error {
	q.sent = append(q.sent, mail)
	return nil
}

func TestSubmitContactMessage(t *testing.T) {
	queue := &captureQueue{}
	svc, err := sitecontent.New(
		sitecontent.WithStore(memory.New()),
		sitecontent.WithMailQueue(queue),
	)
	require.NoError(t, err)

	msg, err := svc.SubmitContactMessage(context.Background(), sitecontent.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "Interested in a partnership.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Visitor", msg.Name)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, queue.sent, 1)
	assert.Equal(t, "jane@example.com", queue.sent[0].To)
	assert.Contains(t, queue.sent[0].Subject, "Jane Visitor")
	assert.Equal(t, "Interested in a partnership.", queue.sent[0].Body)
}

func TestSubmitContactMessageValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitContactMessage(context.Background(), sitecontent.ContactRequest{
		Name:  "No Message",
		Email: "x@example.com",
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
}

func TestSubmitContactMessageWithoutQueue(t *testing.T) {
	// A service without a mail queue still accepts submissions.
	svc := newTestService(t)

	msg, err := svc.SubmitContactMessage(context.Background(), sitecontent.ContactRequest{
		Name:    "Quiet",
		Email:   "q@example.com",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}
