package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/shared/config"
)

const (
	contactsTTL = 5 * time.Minute
	unreadTTL   = 30 * time.Second
)

// RedisCache is a best-effort cache for contact lists and unread counts.
// Every miss path degrades to the database; cache failures never surface
// as request failures.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(cfg *config.RedisConfig, prefix string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, prefix: prefix}, nil
}

func (r *RedisCache) contactsKey(userID string) string {
	return r.prefix + "contacts:" + userID
}

func (r *RedisCache) unreadKey(userID string) string {
	return r.prefix + "unread:" + userID
}

func (r *RedisCache) GetContacts(ctx context.Context, userID string) ([]domain.Contact, bool) {
	data, err := r.client.Get(ctx, r.contactsKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var contacts []domain.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, false
	}
	return contacts, true
}

func (r *RedisCache) SetContacts(ctx context.Context, userID string, contacts []domain.Contact) error {
	data, err := json.Marshal(contacts)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.contactsKey(userID), data, contactsTTL).Err()
}

func (r *RedisCache) InvalidateContacts(ctx context.Context, userIDs ...string) error {
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = r.contactsKey(id)
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) GetUnreadCount(ctx context.Context, userID string) (int64, bool) {
	val, err := r.client.Get(ctx, r.unreadKey(userID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (r *RedisCache) SetUnreadCount(ctx context.Context, userID string, count int64) error {
	return r.client.Set(ctx, r.unreadKey(userID), strconv.FormatInt(count, 10), unreadTTL).Err()
}

func (r *RedisCache) InvalidateUnreadCount(ctx context.Context, userIDs ...string) error {
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = r.unreadKey(id)
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
