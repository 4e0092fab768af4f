package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := NewPublisher(writer)

	p.Publish(context.Background(), KindBookmarkCreated, "hodor", "id1")

	assert.Len(t, writer.messages, 1)

	var event Event
	assert.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, KindBookmarkCreated, event.Kind)
	assert.Equal(t, "hodor", event.UserID)
	assert.Equal(t, "id1", event.SubjectID)
	assert.NotEmpty(t, event.EventID)
	assert.NotZero(t, event.Timestamp)
	assert.Equal(t, []byte(event.EventID), writer.messages[0].Key)
}

func TestPublisher_NilSafe(t *testing.T) {
	var p *Publisher

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), KindUserCreated, "hodor", "hodor")
	})
	assert.NoError(t, p.Close())

	p = NewPublisher(nil)
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), KindUserCreated, "hodor", "hodor")
	})
	assert.NoError(t, p.Close())
}

func TestPublisher_WriteErrorIsSwallowed(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	p := NewPublisher(writer)

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), KindBookmarkEdited, "hodor", "id1")
	})
	assert.Empty(t, writer.messages)
}

func TestPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	p := NewPublisher(writer)

	assert.NoError(t, p.Close())
	assert.True(t, writer.closed)
}
