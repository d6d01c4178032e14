package mq

import (
	"context"
	"encoding/json"
	"fmt"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type Producer struct{ client rocketmq.Producer }

func NewProducer(client rocketmq.Producer) *Producer {
	return &Producer{client: client}
}

// PublishMessageSent emits a notification event after a message is
// persisted. Consumers fan it out to whatever channels the platform has
// configured (in-app badge refresh today).
func (p *Producer) PublishMessageSent(ctx context.Context, ev *domain.MessageSentEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal message-sent event: %w", err)
	}
	msg := primitive.NewMessage(TopicNotifications, data)
	msg.WithTag(TagMessageSent)

	_, err = p.client.SendSync(ctx, msg)
	return err
}

func (p *Producer) Shutdown() error {
	return p.client.Shutdown()
}
