package reconcile

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/service"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
)

type Client interface {
	QueryByOutBillNo(ctx context.Context, outBillNo string) (*wxpay.Bill, error)
}

type Servicer interface {
	BillsForReconcile(ctx context.Context, limit uint, recheckAfter time.Duration) ([]domain.TransferBill, error)
	ApplyReconcile(ctx context.Context, results []service.ReconcileResult) error
}
