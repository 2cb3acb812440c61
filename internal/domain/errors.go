package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrSignInInProgress  = errors.New("sign-in already in progress")
	ErrSignInTooFrequent = errors.New("sign-in too frequent")
	ErrMerchantMismatch  = errors.New("appid or mch_id does not match merchant")
	ErrBillIdentifier    = errors.New("package_info or out_bill_no required")
	ErrUnknownBillState  = errors.New("unknown bill state")
)

// PayRejectedError WeChat Pay отклонил перевод. Bill упавший счёт.
type PayRejectedError struct {
	Bill   *TransferBill
	Reason string
}

func NewPayRejectedError(bill *TransferBill, reason string) error {
	return &PayRejectedError{Bill: bill, Reason: reason}
}

func (e *PayRejectedError) Error() string {
	return fmt.Sprintf("transfer %s rejected: %s", e.Bill.OutBillNo, e.Reason)
}
