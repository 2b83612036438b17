package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
)

type CategoryRepository interface {
	GetById(ctx context.Context, id int64) (domain.Category, error)
}

type CachedCategoryRepository struct {
	dao   dao.CategoryDAO
	cache cache.CategoryCache
	l     logger.Logger
}

func NewCategoryRepository(d dao.CategoryDAO, c cache.CategoryCache, l logger.Logger) CategoryRepository {
	return &CachedCategoryRepository{
		dao:   d,
		cache: c,
		l:     l,
	}
}

func (repo *CachedCategoryRepository) GetById(ctx context.Context, id int64) (domain.Category, error) {
	name, err := repo.cache.GetName(ctx, id)
	if err == nil {
		return domain.Category{Id: id, Name: name}, nil
	}
	c, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	if er := repo.cache.SetName(ctx, id, c.CategoryName); er != nil {
		repo.l.Error("回写分类缓存失败",
			logger.Int64("id", id),
			logger.Error(er))
	}
	return domain.Category{
		Id:   c.Id,
		Name: c.CategoryName,
	}, nil
}
