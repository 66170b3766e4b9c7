package availabilityRepo

import (
	"context"
	"encoding/json"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "availability:"

// CachedAvailabilityRepo wraps an AvailabilityRepository with a Redis
// read-through cache. Cache failures never mask the underlying store; the
// read just falls through to Mongo.
type CachedAvailabilityRepo struct {
	Inner AvailabilityRepository
	Cache *redis.Client
	TTL   time.Duration
}

// NewCachedAvailabilityRepo wraps inner with the given cache client.
func NewCachedAvailabilityRepo(inner AvailabilityRepository, cache *redis.Client, ttl time.Duration) AvailabilityRepository {
	return &CachedAvailabilityRepo{Inner: inner, Cache: cache, TTL: ttl}
}

func (repo *CachedAvailabilityRepo) Get(personID string) (models.WeeklyAvailability, error) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := cacheKeyPrefix + personID
	if cached, err := repo.Cache.Get(ctx, key).Result(); err == nil {
		var wa models.WeeklyAvailability
		if err := json.Unmarshal([]byte(cached), &wa); err == nil {
			return wa, nil
		}
		logger.Warn("discarding unreadable availability cache entry", zap.String("personID", personID))
	} else if err != redis.Nil {
		logger.Warn("availability cache read failed", zap.String("personID", personID), zap.Error(err))
	}

	wa, err := repo.Inner.Get(personID)
	if err != nil {
		return models.WeeklyAvailability{}, err
	}

	if data, err := json.Marshal(wa); err == nil {
		if err := repo.Cache.Set(ctx, key, data, repo.TTL).Err(); err != nil {
			logger.Warn("availability cache write failed", zap.String("personID", personID), zap.Error(err))
		}
	}
	return wa, nil
}

func (repo *CachedAvailabilityRepo) Replace(personID string, wa models.WeeklyAvailability) error {
	if err := repo.Inner.Replace(personID, wa); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := repo.Cache.Del(ctx, cacheKeyPrefix+personID).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("personID", personID), zap.Error(err))
	}
	return nil
}

// Invalidate drops the cached availability for a person. Called when the
// person record itself is created, updated, or deleted outside Replace.
func (repo *CachedAvailabilityRepo) Invalidate(personID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := repo.Cache.Del(ctx, cacheKeyPrefix+personID).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("personID", personID), zap.Error(err))
	}
}
