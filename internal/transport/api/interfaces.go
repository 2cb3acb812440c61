package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/service"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
)

type TransferServicer interface {
	SignIn(ctx context.Context, args service.SignInArgs) (*domain.TransferBill, error)
	Confirm(ctx context.Context, args service.ConfirmArgs) (*domain.TransferBill, error)
	SyncByOutBillNo(ctx context.Context, outBillNo string) (*domain.TransferBill, error)
	HandleNotification(ctx context.Context, bill *wxpay.Bill) (*domain.TransferBill, error)
	Logs(ctx context.Context, openID string, limit, offset uint) ([]domain.TransferBill, error)
	PendingBill(ctx context.Context, openID string) (*domain.TransferBill, error)
}

type UserServicer interface {
	Balance(ctx context.Context, openID string) (int64, error)
}

// NotificationParser проверяет и расшифровывает колбэки WeChat Pay. Реализуется *wxpay.Client.
type NotificationParser interface {
	ParseNotification(header http.Header, body []byte) (*wxpay.Notification, *wxpay.Bill, error)
}
