package service

import (
	"context"
	"errors"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/repository/repoargs"
	"github.com/fsdevblog/wepay-checkin/pkg/uow"
)

type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewUserService(u uow.UOW) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

// Balance возвращает начисленный баланс openID в фэнях. У неизвестного юзера баланс нулевой.
func (s *UserService) Balance(ctx context.Context, openID string) (int64, error) {
	user, err := s.userRepo.FindByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err //nolint:wrapcheck
	}
	return user.Balance, nil
}
