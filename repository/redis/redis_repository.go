package redis

import (
	"context"
	"strconv"
	"time"

	redisclient "github.com/anindyaputri/dress-shop/cmd/redis"
)

// Repository is the process-wide session cache: session jti -> user id, plus
// the cached role used for the admin guard. The auth application is the only
// writer; middleware and handlers only read.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetRole(ctx context.Context, userID uint64, role string, ttl time.Duration) error
	GetRole(ctx context.Context, userID uint64) (string, error)
	DeleteRole(ctx context.Context, userID uint64) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func roleKey(userID uint64) string {
	return "role:" + strconv.FormatUint(userID, 10)
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

// SetRole caches the profile role for the admin guard
func (r *redis) SetRole(ctx context.Context, userID uint64, role string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, roleKey(userID), role, ttl).Err()
}

// GetRole retrieves the cached role; empty string when missing
func (r *redis) GetRole(ctx context.Context, userID uint64) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, roleKey(userID)).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteRole drops the cached role, forcing a fresh profile read next time
func (r *redis) DeleteRole(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, roleKey(userID)).Err()
}
