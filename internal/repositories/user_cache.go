package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/models"
)

// UserCacheRepository caches user records in Redis keyed by email.
// User records are immutable after registration, so cached copies
// never go stale within the TTL.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetByEmail returns the cached user for the given email, or (nil, nil)
// on a cache miss.
func (r *UserCacheRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	key := fmt.Sprintf("user:email:%s", email)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// SetByEmail caches a user record with expiration.
func (r *UserCacheRepository) SetByEmail(ctx context.Context, user *models.UserDB) error {
	key := fmt.Sprintf("user:email:%s", user.Email)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
