package cache

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// CategoryCache 分类名的缓存，分类几乎不变，过期时间可以放得很长
type CategoryCache interface {
	GetName(ctx context.Context, id int64) (string, error)
	SetName(ctx context.Context, id int64, name string) error
}

type RedisCategoryCache struct {
	cmd        redis.Cmdable
	expiration time.Duration
}

func NewRedisCategoryCache(cmd redis.Cmdable) CategoryCache {
	return &RedisCategoryCache{
		cmd:        cmd,
		expiration: time.Hour,
	}
}

func (cache *RedisCategoryCache) GetName(ctx context.Context, id int64) (string, error) {
	return cache.cmd.Get(ctx, cache.key(id)).Result()
}

func (cache *RedisCategoryCache) SetName(ctx context.Context, id int64, name string) error {
	return cache.cmd.Set(ctx, cache.key(id), name, cache.expiration).Err()
}

func (cache *RedisCategoryCache) key(id int64) string {
	return fmt.Sprintf("category:name:%d", id)
}
