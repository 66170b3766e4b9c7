package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"slotify/utils"
)

// Locker serializes booking commits per participant. Implementations must
// make TryLock exclusive per key; the value ties an Unlock to its holder.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, value string, err error)
	Unlock(ctx context.Context, key, value string) error
}

// RedisLocker implements Locker with SETNX and owner-checked release.
// The TTL bounds lock leakage if a process dies mid-commit; correctness
// still rests on the store's transactional insert.
type RedisLocker struct {
	Client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{Client: client}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	value := uuid.NewString()
	acquired, err := l.Client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, "", err
	}
	if !acquired {
		return false, "", nil
	}
	return true, value, nil
}

func (l *RedisLocker) Unlock(ctx context.Context, key, value string) error {
	stored, err := l.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		// Lock expired; nothing to release.
		return nil
	}
	if err != nil {
		return err
	}
	if stored != value {
		// Lock expired and was re-acquired by another commit. Releasing it
		// here would break that commit's critical section.
		utils.GetLogger().Warn("booking lock ownership mismatch on release", zap.String("key", key))
		return nil
	}
	return l.Client.Del(ctx, key).Err()
}
