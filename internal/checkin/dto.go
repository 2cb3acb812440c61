package checkin

import "encoding/json"

type signInRequest struct {
	OpenID string `json:"openid"`
	Amount int64  `json:"amount"`
	Remark string `json:"remark"`
	Time   string `json:"time,omitempty"`
}

// SignInResponse тело ответа POST /transfer/to_user.
type SignInResponse struct {
	Code        int    `json:"code"`
	Msg         string `json:"msg"`
	OutBillNo   string `json:"out_bill_no"`
	PackageInfo string `json:"package_info"`
	State       string `json:"state"`
	AppID       string `json:"appid"`
	MchID       string `json:"mch_id"`
}

const stateWaitUserConfirm = "WAIT_USER_CONFIRM"

func (r *SignInResponse) needsConfirmation() bool {
	return r.PackageInfo != "" || (r.OutBillNo != "" && r.State == stateWaitUserConfirm)
}

type confirmRequest struct {
	AppID       string `json:"appid,omitempty"`
	MchID       string `json:"mch_id,omitempty"`
	PackageInfo string `json:"package_info,omitempty"`
	OutBillNo   string `json:"out_bill_no,omitempty"`
}

type notifyRequest struct {
	OutBillNo string `json:"outbillno"`
}

type msgResponse struct {
	Msg   string `json:"msg"`
	State string `json:"state"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type logsResponse struct {
	Data []json.RawMessage `json:"data"`
}

type pendingResponse struct {
	Data *Pending `json:"data"`
}
