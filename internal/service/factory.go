package service

import (
	"fmt"

	"github.com/fsdevblog/wepay-checkin/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	TransferService *TransferService
}

func Factory(unitOfWork uow.UOW, pay PayClient, guard SignInGuard, opts TransferOptions) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", userServiceErr)
	}

	transferService, transferServiceErr := NewTransferService(unitOfWork, pay, guard, opts)
	if transferServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", transferServiceErr)
	}

	return &AppServices{
		UserService:     userService,
		TransferService: transferService,
	}, nil
}
