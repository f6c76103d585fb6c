package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lock is a single-holder lock stored under <namespace>::<key>. It is never released
// early: the holder keeps it until the TTL expires.
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock; namespace may be empty
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	if namespace != "" {
		key = namespace + "::" + key
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock makes one attempt to acquire the lock
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.rdb.SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	return acquired, nil
}
