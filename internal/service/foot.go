package service

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
)

type UserFootService interface {
	// SaveRead 记录一次阅读，返回这个用户在这篇文章上的完整足迹
	SaveRead(ctx context.Context, articleId, authorId, uid int64) (domain.UserFoot, error)
	ReadArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error)
	CollectionArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error)
	// PraisedUsers 点赞过这篇文章的用户，按点赞时间倒序
	PraisedUsers(ctx context.Context, articleId int64) ([]domain.SimpleUser, error)
}

type userFootService struct {
	repo    repository.UserFootRepository
	userSvc UserService
}

func NewUserFootService(repo repository.UserFootRepository, userSvc UserService) UserFootService {
	return &userFootService{
		repo:    repo,
		userSvc: userSvc,
	}
}

func (svc *userFootService) SaveRead(ctx context.Context, articleId, authorId, uid int64) (domain.UserFoot, error) {
	return svc.repo.SaveOrUpdateRead(ctx, articleId, authorId, uid)
}

func (svc *userFootService) ReadArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error) {
	return svc.repo.ListReadArticleIds(ctx, uid, page)
}

func (svc *userFootService) CollectionArticleIds(ctx context.Context, uid int64, page domain.PageParam) ([]int64, error) {
	return svc.repo.ListCollectionArticleIds(ctx, uid, page)
}

func (svc *userFootService) PraisedUsers(ctx context.Context, articleId int64) ([]domain.SimpleUser, error) {
	uids, err := svc.repo.ListPraisedUserIds(ctx, articleId)
	if err != nil {
		return nil, err
	}
	return svc.userSvc.BasicProfiles(ctx, uids)
}
