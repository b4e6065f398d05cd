package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

const likeCountTTL = time.Minute

// LikeCountCache keeps per-post like counts in Redis. Entries expire after a
// short TTL and are dropped outright when a post gains a like or is deleted,
// so the database count stays authoritative.
type LikeCountCache struct {
	Client *redis.Client
}

func NewLikeCountCache(client *redis.Client) *LikeCountCache {
	return &LikeCountCache{Client: client}
}

func likeCountKey(postID uuid.UUID) string {
	return "likes:" + postID.String()
}

func (c *LikeCountCache) Get(ctx context.Context, postID uuid.UUID) (int64, bool, error) {
	count, err := c.Client.Get(ctx, likeCountKey(postID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return count, true, nil
}

func (c *LikeCountCache) Set(ctx context.Context, postID uuid.UUID, count int64) error {
	return c.Client.Set(ctx, likeCountKey(postID), count, likeCountTTL).Err()
}

func (c *LikeCountCache) Invalidate(ctx context.Context, postID uuid.UUID) error {
	return c.Client.Del(ctx, likeCountKey(postID)).Err()
}
