package domain

type BillState string

const (
	// BillStateCreated счёт сохранён у нас, но ещё не подтверждён WeChat Pay.
	BillStateCreated         BillState = "CREATED"
	BillStateAccepted        BillState = "ACCEPTED"
	BillStateProcessing      BillState = "PROCESSING"
	BillStateWaitUserConfirm BillState = "WAIT_USER_CONFIRM"
	BillStateTransfering     BillState = "TRANSFERING"
	BillStateSuccess         BillState = "SUCCESS"
	BillStateFail            BillState = "FAIL"
	BillStateCanceling       BillState = "CANCELING"
	BillStateCancelled       BillState = "CANCELLED"
)

// FinalBillStates счета в этих статусах больше не меняются.
var FinalBillStates = []BillState{BillStateSuccess, BillStateFail, BillStateCancelled}

func (s BillState) IsFinal() bool {
	for _, final := range FinalBillStates {
		if s == final {
			return true
		}
	}
	return false
}

func (s BillState) IsKnown() bool {
	switch s {
	case BillStateCreated, BillStateAccepted, BillStateProcessing, BillStateWaitUserConfirm,
		BillStateTransfering, BillStateSuccess, BillStateFail, BillStateCanceling, BillStateCancelled:
		return true
	default:
		return false
	}
}

// TransferSceneCashMarketing сценарий перевода "现金营销".
const TransferSceneCashMarketing = "1000"
