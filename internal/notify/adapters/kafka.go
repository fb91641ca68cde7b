// Package adapters delivers outbox messages to the outside world.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"bulwark/internal/notify/models"
)

// KafkaSender publishes each message as one JSON record keyed by message id.
// The push gateway consumes the topic.
type KafkaSender struct {
	client *kgo.Client
	topic  string
}

func NewKafkaSender(client *kgo.Client, topic string) *KafkaSender {
	return &KafkaSender{client: client, topic: topic}
}

type record struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Content    string   `json:"content"`
	Recipients []string `json:"recipients"`
	CreatedAt  string   `json:"created_at"`
}

func (s *KafkaSender) Send(ctx context.Context, m *models.Message) error {
	value, err := json.Marshal(record{
		ID:         m.ID,
		Kind:       string(m.Kind),
		Content:    m.Content,
		Recipients: m.Recipients,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal push record: %w", err)
	}
	rec := &kgo.Record{Topic: s.topic, Key: []byte(m.ID), Value: value}
	if err := s.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce push record: %w", err)
	}
	return nil
}
