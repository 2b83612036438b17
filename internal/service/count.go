package service

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
)

type CountService interface {
	// ArticleCount 单篇文章的互动计数，没有记录等价于全零
	ArticleCount(ctx context.Context, articleId int64) (domain.ArticleCount, error)
	// ArticleCounts 批量查询，缺的文章在返回的映射里补全零值
	ArticleCounts(ctx context.Context, articleIds []int64) (map[int64]domain.ArticleCount, error)
	IncrReadCnt(ctx context.Context, articleId int64) error
	BatchIncrReadCnt(ctx context.Context, articleIds []int64) error
}

type countService struct {
	repo repository.ArticleCountRepository
}

func NewCountService(repo repository.ArticleCountRepository) CountService {
	return &countService{
		repo: repo,
	}
}

func (svc *countService) ArticleCount(ctx context.Context, articleId int64) (domain.ArticleCount, error) {
	return svc.repo.Get(ctx, articleId)
}

func (svc *countService) ArticleCounts(ctx context.Context, articleIds []int64) (map[int64]domain.ArticleCount, error) {
	res, err := svc.repo.GetByIds(ctx, articleIds)
	if err != nil {
		return nil, err
	}
	for _, id := range articleIds {
		if _, ok := res[id]; !ok {
			res[id] = domain.ArticleCount{}
		}
	}
	return res, nil
}

func (svc *countService) IncrReadCnt(ctx context.Context, articleId int64) error {
	return svc.repo.IncrReadCnt(ctx, articleId)
}

func (svc *countService) BatchIncrReadCnt(ctx context.Context, articleIds []int64) error {
	return svc.repo.BatchIncrReadCnt(ctx, articleIds)
}
