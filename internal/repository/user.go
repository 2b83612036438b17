package repository

import (
	"context"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository/cache"
	"github.com/cnmd-sb-git/paicoding/internal/repository/dao"
	"github.com/cnmd-sb-git/paicoding/pkg/logger"
	"github.com/ecodeclub/ekit/slice"
)

var ErrUserNotFound = dao.ErrDataNotFound

type UserRepository interface {
	FindById(ctx context.Context, id int64) (domain.User, error)
	// FindByIds 批量查询不走缓存，结果不保证和 ids 一一对应
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
	l     logger.Logger
}

func NewUserRepository(d dao.UserDAO, c cache.UserCache, l logger.Logger) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
		l:     l,
	}
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = repo.toDomain(ue)
	if er := repo.cache.Set(ctx, u); er != nil {
		// 回写缓存失败不影响主流程
		repo.l.Error("回写用户缓存失败",
			logger.Int64("uid", id),
			logger.Error(er))
	}
	return u, nil
}

func (repo *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := repo.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map[dao.User, domain.User](users,
		func(idx int, src dao.User) domain.User {
			return repo.toDomain(src)
		}), nil
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		NickName: u.NickName,
		Avatar:   u.Avatar,
	}
}
