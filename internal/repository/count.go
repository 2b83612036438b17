package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
)

type ArticleCountRepository interface {
	// Get 查不到记录时返回全零计数，不返回错误
	Get(ctx context.Context, articleId int64) (domain.ArticleCount, error)
	// GetByIds 返回 articleId 到计数的映射，缺的文章不在映射里
	GetByIds(ctx context.Context, articleIds []int64) (map[int64]domain.ArticleCount, error)
	IncrReadCnt(ctx context.Context, articleId int64) error
	BatchIncrReadCnt(ctx context.Context, articleIds []int64) error
}

type CachedArticleCountRepository struct {
	dao   dao.ArticleCountDAO
	cache cache.ArticleCountCache
	l     logger.Logger
}

func NewArticleCountRepository(d dao.ArticleCountDAO,
	c cache.ArticleCountCache, l logger.Logger) ArticleCountRepository {
	return &CachedArticleCountRepository{
		dao:   d,
		cache: c,
		l:     l,
	}
}

func (repo *CachedArticleCountRepository) Get(ctx context.Context, articleId int64) (domain.ArticleCount, error) {
	cnt, err := repo.cache.Get(ctx, articleId)
	if err == nil {
		return cnt, nil
	}
	ce, err := repo.dao.Get(ctx, articleId)
	switch err {
	case nil:
		cnt = repo.toDomain(ce)
	case dao.ErrDataNotFound:
		// 没有计数记录说明这篇文章还没有任何互动
		cnt = domain.ArticleCount{}
	default:
		return domain.ArticleCount{}, err
	}
	if er := repo.cache.Set(ctx, articleId, cnt); er != nil {
		repo.l.Error("回写文章计数缓存失败",
			logger.Int64("aid", articleId),
			logger.Error(er))
	}
	return cnt, nil
}

func (repo *CachedArticleCountRepository) GetByIds(ctx context.Context, articleIds []int64) (map[int64]domain.ArticleCount, error) {
	cnts, err := repo.dao.GetByIds(ctx, articleIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.ArticleCount, len(cnts))
	for _, c := range cnts {
		res[c.ArticleId] = repo.toDomain(c)
	}
	return res, nil
}

func (repo *CachedArticleCountRepository) IncrReadCnt(ctx context.Context, articleId int64) error {
	// 先落库，再尝试更新缓存，缓存里没有就不管
	err := repo.dao.IncrReadCnt(ctx, articleId)
	if err != nil {
		return err
	}
	return repo.cache.IncrReadCntIfPresent(ctx, articleId)
}

func (repo *CachedArticleCountRepository) BatchIncrReadCnt(ctx context.Context, articleIds []int64) error {
	err := repo.dao.BatchIncrReadCnt(ctx, articleIds)
	if err != nil {
		return err
	}
	for _, id := range articleIds {
		if er := repo.cache.IncrReadCntIfPresent(ctx, id); er != nil {
			repo.l.Error("更新文章计数缓存失败",
				logger.Int64("aid", id),
				logger.Error(er))
		}
	}
	return nil
}

func (repo *CachedArticleCountRepository) toDomain(c dao.ArticleCount) domain.ArticleCount {
	return domain.ArticleCount{
		ReadCnt:    c.ReadCnt,
		PraiseCnt:  c.PraiseCnt,
		CommentCnt: c.CommentCnt,
		CollectCnt: c.CollectCnt,
	}
}
