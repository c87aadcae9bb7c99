package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is usable and behaves as an always-empty cache.
type Client struct {
	client *redis.Client
	prefix string
}

// New creates a new Redis client. Keys are namespaced under "storewatch:".
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts), prefix: "storewatch:"}
}

// NewWithRedis wraps an existing redis client, mainly for tests.
func NewWithRedis(rdb *redis.Client, prefix string) *Client {
	return &Client{client: rdb, prefix: prefix}
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		// redis.Nil and outages both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, c.prefix+key).Err()
	return nil
}

// GetJSON decodes a cached JSON value into dst. It reports false on a miss
// or when the cached bytes do not decode.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON encodes v and stores it with TTL.
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, payload, ttl)
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
