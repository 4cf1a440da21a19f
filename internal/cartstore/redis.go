package cartstore

import (
	"context"
	"encoding/json"
	"fmt"

	"time"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cart"

	"github.com/redis/go-redis/v9"
)

// Abandoned carts expire after a day.
const cartTTL = 24 * time.Hour

// RedisStore persists session carts as JSON under cart:<token>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(token string) string {
	return fmt.Sprintf("cart:%s", token)
}

func (s *RedisStore) Get(ctx context.Context, token string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(token)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(token), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, cartKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
