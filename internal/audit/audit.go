// Package audit publishes application events to Kafka so account and
// bookmark changes leave a trail outside the primary store.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mpetrov/linkstash/internal/logger"
)

// Event kinds published to the audit topic.
const (
	KindUserCreated     = "user_created"
	KindBookmarkCreated = "bookmark_created"
	KindBookmarkEdited  = "bookmark_edited"
)

// Event is the record published after a successful write.
type Event struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
	UserID    string `json:"user_id"`
	SubjectID string `json:"subject_id"`
	Timestamp int64  `json:"timestamp"`
}

// Writer is the Kafka capability the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publishes audit events. A nil Publisher, or one constructed
// without a writer, drops events silently so callers never branch on
// whether auditing is configured.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a publisher over the given writer. writer may be nil.
func NewPublisher(writer Writer) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends one event. Failures are logged, never returned: the audit
// trail must not fail the operation that produced it.
func (p *Publisher) Publish(ctx context.Context, kind, userID, subjectID string) {
	if p == nil || p.writer == nil {
		return
	}

	event := Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		UserID:    userID,
		SubjectID: subjectID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "kind", kind, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "kind", kind, "err", err)
		return
	}

	logger.Log.Infow("audit event published",
		"kind", kind, "user_id", userID, "subject_id", subjectID)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
