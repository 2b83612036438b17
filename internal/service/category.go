package service

import (
	"context"
	"errors"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
)

type CategoryService interface {
	// Name 查询分类名，分类不存在时返回空串
	Name(ctx context.Context, id int64) (string, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{
		repo: repo,
	}
}

func (svc *categoryService) Name(ctx context.Context, id int64) (string, error) {
	c, err := svc.repo.GetById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		// 分类被删了不影响文章展示
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.Name, nil
}
