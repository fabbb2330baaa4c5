// Package cache is a thin Redis layer in front of hot user lookups. Token
// authentication hits the user table on every request; the cache keeps that
// read off the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"standsreg/internal/models"
)

// ErrMiss is returned when a key is absent; callers fall through to the
// database.
var ErrMiss = errors.New("cache miss")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *CacheService) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		return fmt.Errorf("failed to get cache value: %w", err)
	}
	return json.Unmarshal(data, dest)
}

func userIDKey(id uint) string {
	return fmt.Sprintf("user:id:%d", id)
}

func userEmailKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

// CacheUser stores a user under both its id and email keys.
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}
	if err := s.set(ctx, userIDKey(user.ID), user); err != nil {
		return err
	}
	return s.set(ctx, userEmailKey(user.Email), user)
}

// GetUserByID returns a cached user or ErrMiss.
func (s *CacheService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.get(ctx, userIDKey(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns a cached user or ErrMiss.
func (s *CacheService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.get(ctx, userEmailKey(email), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InvalidateUser drops both keys for a user. Called after any user mutation.
func (s *CacheService) InvalidateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	return s.client.Del(ctx, userIDKey(user.ID), userEmailKey(user.Email)).Err()
}

// FlushAll clears the cache. Used at startup so stale user rows never outlive
// a schema change.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *CacheService) Close() error {
	return s.client.Close()
}
