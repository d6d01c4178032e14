package mq

import (
	"context"
	"encoding/json"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// Consumer drains notification events. On message-sent it drops the
// recipient's cached unread count so the next poll reflects the new
// message immediately instead of waiting out the TTL.
type Consumer struct {
	client rocketmq.PushConsumer
	cache  domain.ContactCache
	log    zerolog.Logger
}

func NewConsumer(client rocketmq.PushConsumer, cache domain.ContactCache, log zerolog.Logger) *Consumer {
	return &Consumer{
		client: client,
		cache:  cache,
		log:    log.With().Str("component", "mq-consumer").Logger(),
	}
}

func (c *Consumer) SubscribeNotifications() error {
	return c.client.Subscribe(
		TopicNotifications,
		consumer.MessageSelector{},
		c.handleNotification,
	)
}

func (c *Consumer) handleNotification(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		switch msg.GetTags() {
		case TagMessageSent:
			if err := c.handleMessageSent(ctx, msg.Body); err != nil {
				c.log.Error().Err(err).Msg("handle message-sent event failed, will retry")
				return consumer.ConsumeRetryLater, nil
			}
		default:
			c.log.Warn().Str("tag", msg.GetTags()).Msg("unknown tag")
		}
	}
	return consumer.ConsumeSuccess, nil
}

func (c *Consumer) handleMessageSent(ctx context.Context, body []byte) error {
	var ev domain.MessageSentEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		c.log.Error().Err(err).Msg("unmarshal message-sent event")
		return nil
	}
	if c.cache != nil {
		if err := c.cache.InvalidateUnreadCount(ctx, ev.RecipientID); err != nil {
			return err
		}
	}
	c.log.Debug().Str("message_id", ev.MessageID).Msg("notification processed")
	return nil
}

func (c *Consumer) Start() error {
	return c.client.Start()
}

func (c *Consumer) Shutdown() error {
	return c.client.Shutdown()
}
