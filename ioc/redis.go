package ioc

import (
	"fmt"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"time"
)

func InitRedis() redis.Cmdable {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	c := Config{
		Addr:     "127.0.0.1:6379",
		Password: "",
		DB:       0,
	}
	err := viper.UnmarshalKey("redis", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}

	return redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
}

// InitRankingCache 榜单一分钟算一次，缓存放三分钟兜底
func InitRankingCache(cmd redis.Cmdable) cache.RankingCache {
	return cache.NewRedisRankingCache(cmd, time.Minute*3)
}
