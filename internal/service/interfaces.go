package service

import (
	"context"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/repository/repoargs"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type TransferBillRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransferBill) (*domain.TransferBill, error)
	UpdateState(ctx context.Context, args repoargs.UpdateBillState) (*domain.TransferBill, error)
	TouchChecked(ctx context.Context, outBillNos []string) error
	FindByOutBillNo(ctx context.Context, outBillNo string) (*domain.TransferBill, error)
	FindByPackageInfo(ctx context.Context, packageInfo string) (*domain.TransferBill, error)
	FindLatestByState(ctx context.Context, openID string, state domain.BillState) (*domain.TransferBill, error)
	GetByOpenID(ctx context.Context, args repoargs.ListBills) ([]domain.TransferBill, error)
	GetForReconcile(ctx context.Context, args repoargs.BillsForReconcile) ([]domain.TransferBill, error)
}

type UserRepository interface {
	Ensure(ctx context.Context, openID string) error
	AddBalance(ctx context.Context, openID string, amount int64) (*domain.User, error)
	FindByOpenID(ctx context.Context, openID string) (*domain.User, error)
}

// PayClient реализуется *wxpay.Client.
type PayClient interface {
	TransferToUser(ctx context.Context, request wxpay.TransferRequest) (*wxpay.TransferResponse, error)
	QueryByOutBillNo(ctx context.Context, outBillNo string) (*wxpay.Bill, error)
}

type SignInGuard interface {
	Acquire(ctx context.Context, openID string) (func(context.Context), error)
}
