package wxpay

import "github.com/fsdevblog/wepay-checkin/internal/domain"

type SceneReportInfo struct {
	InfoType    string `json:"info_type"`
	InfoContent string `json:"info_content"`
}

// TransferRequest тело POST /v3/fund-app/mch-transfer/transfer-bills. Сумма в фэнях.
type TransferRequest struct {
	AppID                    string            `json:"appid"`
	OutBillNo                string            `json:"out_bill_no"`
	TransferSceneID          string            `json:"transfer_scene_id"`
	OpenID                   string            `json:"openid"`
	UserName                 string            `json:"user_name,omitempty"`
	TransferAmount           int64             `json:"transfer_amount"`
	TransferRemark           string            `json:"transfer_remark"`
	NotifyURL                string            `json:"notify_url,omitempty"`
	UserRecvPerception       string            `json:"user_recv_perception,omitempty"`
	TransferSceneReportInfos []SceneReportInfo `json:"transfer_scene_report_infos,omitempty"`
}

type TransferResponse struct {
	OutBillNo      string           `json:"out_bill_no"`
	TransferBillNo string           `json:"transfer_bill_no"`
	CreateTime     string           `json:"create_time"`
	State          domain.BillState `json:"state"`
	FailReason     string           `json:"fail_reason,omitempty"`
	PackageInfo    string           `json:"package_info,omitempty"`
}

// Bill ответ запроса по out_bill_no и расшифрованный ресурс уведомления о переводе.
type Bill struct {
	MchID          string           `json:"mch_id"`
	OutBillNo      string           `json:"out_bill_no"`
	TransferBillNo string           `json:"transfer_bill_no"`
	AppID          string           `json:"appid,omitempty"`
	State          domain.BillState `json:"state"`
	TransferAmount int64            `json:"transfer_amount"`
	TransferRemark string           `json:"transfer_remark,omitempty"`
	FailReason     string           `json:"fail_reason,omitempty"`
	OpenID         string           `json:"openid"`
	UserName       string           `json:"user_name,omitempty"`
	CreateTime     string           `json:"create_time"`
	UpdateTime     string           `json:"update_time"`
}

type Notification struct {
	ID           string               `json:"id"`
	CreateTime   string               `json:"create_time"`
	ResourceType string               `json:"resource_type"`
	EventType    string               `json:"event_type"`
	Summary      string               `json:"summary"`
	Resource     NotificationResource `json:"resource"`
}

type NotificationResource struct {
	OriginalType   string `json:"original_type"`
	Algorithm      string `json:"algorithm"`
	Ciphertext     string `json:"ciphertext"`
	AssociatedData string `json:"associated_data"`
	Nonce          string `json:"nonce"`
}
