package cache

import (
	"context"
	_ "embed"
	"fmt"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/redis/go-redis/v9"
	"strconv"
	"time"
)

var (
	//go:embed lua/count_incr_cnt.lua
	luaIncrCnt string
)

var ErrKeyNotExist = redis.Nil

const (
	fieldReadCnt    = "read_cnt"
	fieldPraiseCnt  = "praise_cnt"
	fieldCommentCnt = "comment_cnt"
	fieldCollectCnt = "collect_cnt"
)

type ArticleCountCache interface {
	// IncrReadCntIfPresent 如果缓存里有这篇文章的计数，就把阅读数 +1
	IncrReadCntIfPresent(ctx context.Context, articleId int64) error
	Get(ctx context.Context, articleId int64) (domain.ArticleCount, error)
	Set(ctx context.Context, articleId int64, cnt domain.ArticleCount) error
}

type RedisArticleCountCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisArticleCountCache(client redis.Cmdable) ArticleCountCache {
	return &RedisArticleCountCache{
		client:     client,
		expiration: time.Minute * 15,
	}
}

func (r *RedisArticleCountCache) IncrReadCntIfPresent(ctx context.Context, articleId int64) error {
	return r.client.Eval(ctx, luaIncrCnt,
		[]string{r.key(articleId)},
		fieldReadCnt, 1).Err()
}

func (r *RedisArticleCountCache) Get(ctx context.Context, articleId int64) (domain.ArticleCount, error) {
	data, err := r.client.HGetAll(ctx, r.key(articleId)).Result()
	if err != nil {
		return domain.ArticleCount{}, err
	}
	if len(data) == 0 {
		return domain.ArticleCount{}, ErrKeyNotExist
	}
	// Redis 里存的是字符串，这里转回整型，解析失败当成 0
	readCnt, _ := strconv.ParseInt(data[fieldReadCnt], 10, 64)
	praiseCnt, _ := strconv.ParseInt(data[fieldPraiseCnt], 10, 64)
	commentCnt, _ := strconv.ParseInt(data[fieldCommentCnt], 10, 64)
	collectCnt, _ := strconv.ParseInt(data[fieldCollectCnt], 10, 64)
	return domain.ArticleCount{
		ReadCnt:    readCnt,
		PraiseCnt:  praiseCnt,
		CommentCnt: commentCnt,
		CollectCnt: collectCnt,
	}, nil
}

func (r *RedisArticleCountCache) Set(ctx context.Context, articleId int64, cnt domain.ArticleCount) error {
	key := r.key(articleId)
	err := r.client.HMSet(ctx, key,
		fieldReadCnt, cnt.ReadCnt,
		fieldPraiseCnt, cnt.PraiseCnt,
		fieldCommentCnt, cnt.CommentCnt,
		fieldCollectCnt, cnt.CollectCnt,
	).Err()
	if err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.expiration).Err()
}

func (r *RedisArticleCountCache) key(articleId int64) string {
	return fmt.Sprintf("article:count:%d", articleId)
}
