package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// profile entries expire on their own; writes also invalidate explicitly
const profileTTL = 5 * time.Minute

// Cache keeps public profile names in redis so GET /user/:id can skip the
// database on repeat lookups. A nil *Cache is a no-op, which is how the
// server runs when REDIS_ADDRESS is unset.
type Cache struct {
	rdb *redis.Client
}

func New(address, username, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
	return &Cache{rdb: rdb}
}

func profileKey(userID int) string {
	return "profile:" + strconv.Itoa(userID)
}

// GetProfileName returns the cached display name, if present.
func (c *Cache) GetProfileName(ctx context.Context, userID int) (string, bool) {
	if c == nil {
		return "", false
	}
	name, err := c.rdb.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		return "", false
	}
	return name, true
}

func (c *Cache) SetProfileName(ctx context.Context, userID int, name string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, profileKey(userID), name, profileTTL).Err(); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to cache profile")
	}
}

// InvalidateProfile drops the cached name after a rename or account delete.
func (c *Cache) InvalidateProfile(ctx context.Context, userID int) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to invalidate profile")
	}
}
