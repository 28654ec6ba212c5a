package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timeguard/domain/ports"
)

const lockKeyPrefix = "timeguard:lock:"

// Locker implements LockPort ด้วย SETNX + token
type Locker struct {
	client *Client
}

func NewLocker(client *Client) ports.LockPort {
	return &Locker{client: client}
}

func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := l.client.AcquireLock(ctx, lockKeyPrefix+key, token, ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (l *Locker) Release(ctx context.Context, key, token string) error {
	if token == "" {
		return nil
	}
	return l.client.ReleaseLock(ctx, lockKeyPrefix+key, token)
}
