package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
)

type UserFootRepository interface {
	// SaveOrUpdateRead 落一条阅读足迹，返回更新后的完整足迹
	SaveOrUpdateRead(ctx context.Context, articleId, authorId, uid int64) (domain.UserFoot, error)
	ListReadArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error)
	ListCollectionArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error)
	ListPraisedUserIds(ctx context.Context, articleId int64) ([]int64, error)
}

type userFootRepository struct {
	dao dao.UserFootDAO
}

func NewUserFootRepository(dao dao.UserFootDAO) UserFootRepository {
	return &userFootRepository{
		dao: dao,
	}
}

func (repo *userFootRepository) SaveOrUpdateRead(ctx context.Context, articleId, authorId, uid int64) (domain.UserFoot, error) {
	foot, err := repo.dao.SaveOrUpdateRead(ctx, uint8(domain.DocumentTypeArticle), articleId, authorId, uid)
	if err != nil {
		return domain.UserFoot{}, err
	}
	return repo.toDomain(foot), nil
}

func (repo *userFootRepository) ListReadArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error) {
	return repo.dao.ListReadDocIds(ctx, uint8(domain.DocumentTypeArticle), uid, page.Offset(), page.Limit())
}

func (repo *userFootRepository) ListCollectionArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error) {
	return repo.dao.ListCollectionDocIds(ctx, uint8(domain.DocumentTypeArticle), uid, page.Offset(), page.Limit())
}

func (repo *userFootRepository) ListPraisedUserIds(ctx context.Context, articleId int64) ([]int64, error) {
	return repo.dao.ListPraisedUserIds(ctx, uint8(domain.DocumentTypeArticle), articleId)
}

func (repo *userFootRepository) toDomain(foot dao.UserFoot) domain.UserFoot {
	return domain.UserFoot{
		UserId:         foot.UserId,
		DocumentId:     foot.DocumentId,
		DocumentType:   domain.DocumentType(foot.DocumentType),
		DocumentUserId: foot.DocumentUserId,
		ReadStat:       foot.ReadStat,
		PraiseStat:     foot.PraiseStat,
		CommentStat:    foot.CommentStat,
		CollectionStat: foot.CollectionStat,
	}
}
