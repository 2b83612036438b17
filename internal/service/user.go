package service

import (
	"context"
	"errors"
	"github.com/cnmd-sb-git/paicoding/internal/domain"
	"github.com/cnmd-sb-git/paicoding/internal/repository"
	"github.com/ecodeclub/ekit/slice"
)

type UserService interface {
	// BasicProfile 查用户基础信息，用户不存在时返回占位用户而不是报错
	BasicProfile(ctx context.Context, id int64) (domain.User, error)
	BasicProfiles(ctx context.Context, ids []int64) ([]domain.SimpleUser, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) BasicProfile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		// 作者注销了文章还在，展示层需要一个兜底的名字
		return domain.User{
			Id:       id,
			NickName: "神秘用户",
		}, nil
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *userService) BasicProfiles(ctx context.Context, ids []int64) ([]domain.SimpleUser, error) {
	if len(ids) == 0 {
		return []domain.SimpleUser{}, nil
	}
	users, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map[domain.User, domain.SimpleUser](users,
		func(idx int, src domain.User) domain.SimpleUser {
			return domain.SimpleUser{
				Id:     src.Id,
				Name:   src.NickName,
				Avatar: src.Avatar,
			}
		}), nil
}
