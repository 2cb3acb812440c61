package domain

import (
	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	OpenID    string
	Username  string
	// Balance сколько всего получил юзер, в фэнях.
	Balance int64
}

type TransferBill struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CheckedAt      time.Time
	OutBillNo      string
	TransferBillNo string
	OpenID         string
	AppID          string
	MchID          string
	Amount         int64
	Remark         string
	SceneID        string
	State          BillState
	PackageInfo    string
	FailReason     string
}
