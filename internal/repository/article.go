package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"time"
)

var ErrArticleNotFound = dao.ErrDataNotFound

type ArticleRepository interface {
	GetById(ctx context.Context, id int64) (domain.Article, error)
	ListByCategory(ctx context.Context, categoryId int64, page domain.PageParam) ([]domain.Article, error)
	ListBySearchKey(ctx context.Context, key string, page domain.PageParam) ([]domain.Article, error)
	ListByAuthor(ctx context.Context, authorId int64, page domain.PageParam) ([]domain.Article, error)
	ListByIds(ctx context.Context, ids []int64) ([]domain.Article, error)
	ListHot(ctx context.Context, page domain.PageParam) ([]domain.Article, error)
	List(ctx context.Context, offset, limit int) ([]domain.Article, error)
	CountByAuthor(ctx context.Context, authorId int64) (int64, error)
	// IncrReadCnt 是读路径上唯一会写文章表的操作，计数只增不减
	IncrReadCnt(ctx context.Context, id int64) error
}

type CachedArticleRepository struct {
	dao dao.ArticleDAO
}

func NewArticleRepository(dao dao.ArticleDAO) ArticleRepository {
	return &CachedArticleRepository{
		dao: dao,
	}
}

func (repo *CachedArticleRepository) GetById(ctx context.Context, id int64) (domain.Article, error) {
	art, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	return repo.toDomain(art), nil
}

func (repo *CachedArticleRepository) ListByCategory(ctx context.Context, categoryId int64, page domain.PageParam) ([]domain.Article, error) {
	arts, err := repo.dao.ListByCategory(ctx, categoryId, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) ListBySearchKey(ctx context.Context, key string, page domain.PageParam) ([]domain.Article, error) {
	arts, err := repo.dao.ListBySearchKey(ctx, key, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) ListByAuthor(ctx context.Context, authorId int64, page domain.PageParam) ([]domain.Article, error) {
	arts, err := repo.dao.ListByAuthor(ctx, authorId, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) ListByIds(ctx context.Context, ids []int64) ([]domain.Article, error) {
	arts, err := repo.dao.ListByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) ListHot(ctx context.Context, page domain.PageParam) ([]domain.Article, error) {
	arts, err := repo.dao.ListHot(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) List(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	arts, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return repo.toDomains(arts), nil
}

func (repo *CachedArticleRepository) CountByAuthor(ctx context.Context, authorId int64) (int64, error) {
	return repo.dao.CountByAuthor(ctx, authorId)
}

func (repo *CachedArticleRepository) IncrReadCnt(ctx context.Context, id int64) error {
	return repo.dao.IncrReadCnt(ctx, id)
}

func (repo *CachedArticleRepository) toDomains(arts []dao.Article) []domain.Article {
	return slice.Map[dao.Article, domain.Article](arts,
		func(idx int, src dao.Article) domain.Article {
			return repo.toDomain(src)
		})
}

func (repo *CachedArticleRepository) toDomain(art dao.Article) domain.Article {
	return domain.Article{
		Id:      art.Id,
		Title:   art.Title,
		Content: art.Content,
		Author: domain.Author{
			Id: art.AuthorId,
		},
		CategoryId: art.CategoryId,
		Status:     domain.ArticleStatus(art.Status),
		ReadCnt:    art.ReadCnt,
		Ctime:      time.UnixMilli(art.Ctime),
		Utime:      time.UnixMilli(art.Utime),
	}
}
