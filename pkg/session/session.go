// Package session stores browser sessions and their one-shot flash
// messages in Redis, keyed by a server-issued random token.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context) (string, error)
	Authenticate(ctx context.Context, token, userID string) error
	UserID(ctx context.Context, token string) (string, error)
	Destroy(ctx context.Context, token string) error
	SetFlash(ctx context.Context, token, message string) error
	PopFlash(ctx context.Context, token string) (string, error)
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Create issues an anonymous session. Sessions exist before login so that
// flash messages survive a failed authentication attempt.
func (s *RedisStore) Create(ctx context.Context) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	key := sessionKey(token)
	if err := s.client.HSet(ctx, key, "user_id", "", "created_at", time.Now().Format(time.RFC3339)).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	s.client.Expire(ctx, key, s.ttl)

	return token, nil
}

// Authenticate binds a user to an existing session and refreshes its TTL.
func (s *RedisStore) Authenticate(ctx context.Context, token, userID string) error {
	key := sessionKey(token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to look up session: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	if err := s.client.HSet(ctx, key, "user_id", userID).Err(); err != nil {
		return fmt.Errorf("failed to authenticate session: %w", err)
	}
	s.client.Expire(ctx, key, s.ttl)
	return nil
}

// UserID returns the bound user id, or an empty string for an anonymous
// session. ErrNotFound means the token is unknown or expired.
func (s *RedisStore) UserID(ctx context.Context, token string) (string, error) {
	key := sessionKey(token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if exists == 0 {
		return "", ErrNotFound
	}

	userID, err := s.client.HGet(ctx, key, "user_id").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *RedisStore) SetFlash(ctx context.Context, token, message string) error {
	key := sessionKey(token)
	if err := s.client.HSet(ctx, key, "flash", message).Err(); err != nil {
		return fmt.Errorf("failed to set flash message: %w", err)
	}
	return nil
}

// PopFlash returns the pending flash message and clears it.
func (s *RedisStore) PopFlash(ctx context.Context, token string) (string, error) {
	key := sessionKey(token)
	message, err := s.client.HGet(ctx, key, "flash").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read flash message: %w", err)
	}
	s.client.HDel(ctx, key, "flash")
	return message, nil
}
