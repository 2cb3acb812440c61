package repoargs

import (
	"time"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
)

type CreateTransferBill struct {
	OutBillNo string
	OpenID    string
	AppID     string
	MchID     string
	Amount    int64
	Remark    string
	SceneID   string
}

// UpdateBillState пустые TransferBillNo, PackageInfo и FailReason оставляют сохранённые значения.
type UpdateBillState struct {
	OutBillNo      string
	State          domain.BillState
	TransferBillNo string
	PackageInfo    string
	FailReason     string
}

type BillsForReconcile struct {
	Limit         uint
	CheckedBefore time.Time
}

type ListBills struct {
	OpenID string
	Limit  uint
	Offset uint
}
