package mailqueue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/mailqueue"
)

func TestQueueDeliversMessages(t *testing.T) {
	var mu sync.Mutex
	var delivered []sitecontent.OutboundMail
	done := make(chan struct{}, 1)

	q := mailqueue.New(8, func(_ context.Context, mail sitecontent.OutboundMail) error {
		mu.Lock()
		delivered = append(delivered, mail)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	err := q.Enqueue(ctx, sitecontent.OutboundMail{To: "ops@example.com", Subject: "hi", Body: "body"})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not happen in time")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1)
	assert.Equal(t, "ops@example.com", delivered[0].To)
}

func TestQueueRejectsWhenFull(t *testing.T) {
	// No worker running, so the buffer fills up.
	q := mailqueue.New(1, func(context.Context, sitecontent.OutboundMail) error { return nil })
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, sitecontent.OutboundMail{To: "a@example.com"}))
	err := q.Enqueue(ctx, sitecontent.OutboundMail{To: "b@example.com"})
	assert.ErrorIs(t, err, mailqueue.ErrQueueFull)
}
