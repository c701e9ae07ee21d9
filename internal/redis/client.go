package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// LoginSession caches the identity-provider tuple for an openid that has
// no local user record yet, until registration consumes it.
type LoginSession struct {
	OpenID     string    `json:"open_id"`
	UnionID    string    `json:"union_id"`
	SessionKey string    `json:"session_key"`
	CreatedAt  time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetLoginSession(session *LoginSession, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal login session: %w", err)
	}

	return c.rdb.Set(ctx, "login_session:"+session.OpenID, jsonData, ttl).Err()
}

func (c *Client) GetLoginSession(openID string) (*LoginSession, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "login_session:"+openID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("login session not found")
		}
		return nil, fmt.Errorf("failed to get login session: %w", err)
	}

	var session LoginSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login session: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteLoginSession(openID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "login_session:"+openID).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
