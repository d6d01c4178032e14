package mq

import (
	"fmt"
	"net"

	rocketmq "github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/shared/config"
)

// InitProducer initializes the RocketMQ producer. Returns (nil, nil) when
// name servers are not configured so deployments without a broker keep
// working with notifications disabled.
func InitProducer(cfg *config.AppConfig, log zerolog.Logger) (*Producer, error) {
	nameServers := resolveNameServers(cfg.RocketMQ.NameServers, log)
	if len(nameServers) == 0 {
		log.Info().Msg("RocketMQ name servers not configured, notifications disabled")
		return nil, nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(nameServers)),
		producer.WithRetry(cfg.RocketMQ.MaxRetries),
		producer.WithGroupName(cfg.RocketMQ.GroupName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	return NewProducer(p), nil
}

// InitConsumer initializes and starts the notification consumer.
func InitConsumer(cfg *config.AppConfig, cache domain.ContactCache, log zerolog.Logger) (*Consumer, error) {
	nameServers := resolveNameServers(cfg.RocketMQ.NameServers, log)
	if len(nameServers) == 0 {
		return nil, nil
	}

	c, err := rocketmq.NewPushConsumer(
		consumer.WithNsResolver(primitive.NewPassthroughResolver(nameServers)),
		consumer.WithGroupName(cfg.RocketMQ.GroupName),
		consumer.WithRetry(cfg.RocketMQ.MaxRetries),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	mqConsumer := NewConsumer(c, cache, log)

	if err := mqConsumer.SubscribeNotifications(); err != nil {
		return nil, fmt.Errorf("failed to subscribe notification topic: %w", err)
	}
	if err := mqConsumer.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ consumer: %w", err)
	}

	return mqConsumer, nil
}

// resolveNameServers eagerly resolves hostnames; the rocketmq client wants
// addresses it can dial without further lookups.
func resolveNameServers(servers []string, log zerolog.Logger) []string {
	var resolved []string
	for _, addr := range servers {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			resolved = append(resolved, addr)
			continue
		}
		ips, err := net.LookupHost(host)
		if err != nil || len(ips) == 0 {
			log.Warn().Str("host", host).Msg("name server lookup failed, using address as-is")
			resolved = append(resolved, addr)
			continue
		}
		resolved = append(resolved, net.JoinHostPort(ips[0], port))
	}
	return resolved
}
