package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type ArticleTagRepository interface {
	// ListDetailsByArticleId 没有标签时返回空切片，不返回 nil
	ListDetailsByArticleId(ctx context.Context, articleId int64) ([]domain.TagDetail, error)
}

type CachedArticleTagRepository struct {
	dao dao.ArticleTagDAO
}

func NewArticleTagRepository(dao dao.ArticleTagDAO) ArticleTagRepository {
	return &CachedArticleTagRepository{
		dao: dao,
	}
}

func (repo *CachedArticleTagRepository) ListDetailsByArticleId(ctx context.Context, articleId int64) ([]domain.TagDetail, error) {
	details, err := repo.dao.ListDetailsByArticleId(ctx, articleId)
	if err != nil {
		return nil, err
	}
	return slice.Map[dao.ArticleTagDetail, domain.TagDetail](details,
		func(idx int, src dao.ArticleTagDetail) domain.TagDetail {
			return domain.TagDetail{
				Id:   src.TagId,
				Name: src.TagName,
			}
		}), nil
}
