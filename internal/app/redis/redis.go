package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"book-office/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{}

	client.cfg = cfg

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

// NewFromClient оборачивает уже созданный клиент go-redis
func NewFromClient(rdb *redis.Client) *Client {
	return &Client{client: rdb}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func sessionKey(token string) string {
	return sessionPrefix + token
}

// SaveSession сохраняет token -> username с TTL
func (c *Client) SaveSession(ctx context.Context, token, username string, ttl time.Duration) error {
	return c.client.Set(ctx, sessionKey(token), username, ttl).Err()
}

// SessionUsername возвращает имя пользователя по токену сессии
func (c *Client) SessionUsername(ctx context.Context, token string) (string, error) {
	username, err := c.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// DeleteSession отзывает сессию
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	n, err := c.client.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
