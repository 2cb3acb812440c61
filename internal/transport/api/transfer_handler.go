package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/service"
)

const (
	defaultLogsLimit = 20
	maxLogsLimit     = 100
	// fenExp фэни в юани.
	fenExp = -2
)

var (
	errSignInInProgress  = errors.New("签到处理中")
	errSignInTooFrequent = errors.New("签到过于频繁")
	errTransferFailed    = errors.New("转账失败")
	errBillNotFound      = errors.New("账单不存在")
)

type TransferHandler struct {
	svs       TransferServicer
	userSvs   UserServicer
	notify    NotificationParser
	appID     string
	mchID     string
	maxAmount int64
}

type TransferHandlerArgs struct {
	TransferService TransferServicer
	UserService     UserServicer
	Notifications   NotificationParser
	AppID           string
	MchID           string
	MaxAmount       int64
}

func NewTransferHandler(args TransferHandlerArgs) *TransferHandler {
	return &TransferHandler{
		svs:       args.TransferService,
		userSvs:   args.UserService,
		notify:    args.Notifications,
		appID:     args.AppID,
		mchID:     args.MchID,
		maxAmount: args.MaxAmount,
	}
}

// stateMessage сопоставляет статусу счёта код и сообщение для клиента.
func stateMessage(state domain.BillState) (int, string) {
	switch state {
	case domain.BillStateSuccess:
		return 0, "转账成功"
	case domain.BillStateFail:
		return 1, "转账失败"
	case domain.BillStateAccepted, domain.BillStateProcessing, domain.BillStateTransfering:
		return 2, "转账处理中" //nolint:mnd
	case domain.BillStateWaitUserConfirm:
		return 3, "待用户确认收款" //nolint:mnd
	default:
		return 99, "未知状态" //nolint:mnd
	}
}

type ToUserParams struct {
	OpenID string `binding:"required,max_bytes=128" form:"openid" json:"openid"`
	Amount int64  `binding:"required,min=1"         form:"amount" json:"amount"`
	Remark string `binding:"max=32"                 form:"remark" json:"remark"`
	Time   string `form:"time"                      json:"time"`
}

type ToUserResponse struct {
	Code        int              `json:"code"`
	Msg         string           `json:"msg"`
	OutBillNo   string           `json:"out_bill_no"`
	PackageInfo string           `json:"package_info,omitempty"`
	State       domain.BillState `json:"state"`
	AppID       string           `json:"appid"`
	MchID       string           `json:"mch_id"`
}

// ToUser POST TransferGroup + ToUserRoute. Чекин юзера и отправка красного конверта.
func (h *TransferHandler) ToUser(c *gin.Context) {
	var params ToUserParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Amount > h.maxAmount {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("amount exceeds limit")).
			SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultTransferTimeout)
	defer cancel()

	bill, err := h.svs.SignIn(reqCtx, service.SignInArgs{
		OpenID: params.OpenID,
		Amount: params.Amount,
		Remark: params.Remark,
	})
	if err != nil {
		var rejected *domain.PayRejectedError
		switch {
		case errors.Is(err, domain.ErrSignInInProgress):
			_ = c.AbortWithError(http.StatusTooManyRequests, errSignInInProgress).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrSignInTooFrequent):
			_ = c.AbortWithError(http.StatusTooManyRequests, errSignInTooFrequent).SetType(gin.ErrorTypePublic)
		case errors.As(err, &rejected):
			_ = c.AbortWithError(http.StatusBadGateway, errTransferFailed).SetType(gin.ErrorTypePublic)
			_ = c.Error(err)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	code, msg := stateMessage(bill.State)
	c.JSON(http.StatusOK, ToUserResponse{
		Code:        code,
		Msg:         msg,
		OutBillNo:   bill.OutBillNo,
		PackageInfo: bill.PackageInfo,
		State:       bill.State,
		AppID:       h.appID,
		MchID:       h.mchID,
	})
}

type ConfirmParams struct {
	AppID       string `json:"appid"`
	MchID       string `json:"mch_id"`
	PackageInfo string `json:"package_info"`
	OutBillNo   string `json:"out_bill_no"`
}

// Confirm POST TransferGroup + ConfirmRoute. Обновляет счёт после подтверждения перевода юзером.
func (h *TransferHandler) Confirm(c *gin.Context) {
	var params ConfirmParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.svs.Confirm(reqCtx, service.ConfirmArgs{
		AppID:       params.AppID,
		MchID:       params.MchID,
		PackageInfo: params.PackageInfo,
		OutBillNo:   params.OutBillNo,
	})
	if err != nil {
		h.abortBillError(c, err)
		return
	}

	_, msg := stateMessage(bill.State)
	c.JSON(http.StatusOK, gin.H{"msg": msg, "out_bill_no": bill.OutBillNo, "state": bill.State})
}

func (h *TransferHandler) abortBillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBillIdentifier), errors.Is(err, domain.ErrMerchantMismatch):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, errBillNotFound).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// notifyBody отличает пинг клиента от колбэка WeChat Pay, в колбэке всегда есть resource.
type notifyBody struct {
	OutBillNo string          `json:"outbillno"`
	Resource  json.RawMessage `json:"resource"`
}

// Notify POST TransferGroup + NotifyRoute. Обслуживает и пинг клиента, и колбэк WeChat Pay.
func (h *TransferHandler) Notify(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		return
	}

	var probe notifyBody
	if unmarshalErr := json.Unmarshal(body, &probe); unmarshalErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, unmarshalErr).SetType(gin.ErrorTypeBind)
		return
	}

	if len(probe.Resource) > 0 {
		h.callback(c, body)
		return
	}

	if probe.OutBillNo == "" {
		_ = c.AbortWithError(http.StatusBadRequest, domain.ErrBillIdentifier).SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, syncErr := h.svs.SyncByOutBillNo(reqCtx, probe.OutBillNo)
	if syncErr != nil {
		h.abortBillError(c, syncErr)
		return
	}

	_, msg := stateMessage(bill.State)
	c.JSON(http.StatusOK, gin.H{"msg": msg, "state": bill.State})
}

// callback отвечает WeChat Pay пустым 200 либо {code:"FAIL", message}. Неизвестный счёт получает 200 с
// сообщением, ошибка остаётся в логе запроса.
func (h *TransferHandler) callback(c *gin.Context, body []byte) {
	_, bill, parseErr := h.notify.ParseNotification(c.Request.Header, body)
	if parseErr != nil {
		_ = c.Error(parseErr)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "FAIL", "message": "验签或解密失败"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.svs.HandleNotification(reqCtx, bill); err != nil {
		_ = c.Error(err)
		// повтор колбэка ничего не изменит, отвечаем 200, чтобы WeChat Pay перестал слать.
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"code": "SUCCESS", "message": "账单不存在"})
			return
		}
		if errors.Is(err, domain.ErrMerchantMismatch) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "FAIL", "message": "商户号不匹配"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "FAIL", "message": "落库失败"})
		return
	}

	c.Status(http.StatusOK)
}

type openIDQuery struct {
	OpenID string `binding:"required,max_bytes=128" form:"openid"`
}

// Amount GET TransferGroup + AmountRoute. Отвечает голым числом баланса.
func (h *TransferHandler) Amount(c *gin.Context) {
	var query openIDQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.userSvs.Balance(reqCtx, query.OpenID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, balance)
}

type logsQuery struct {
	OpenID string `binding:"required,max_bytes=128" form:"openid"`
	Limit  uint   `form:"limit"`
	Offset uint   `form:"offset"`
}

type LogItem struct {
	OutBillNo  string           `json:"out_bill_no"`
	Amount     int64            `json:"amount"`
	AmountYuan string           `json:"amount_yuan"`
	Remark     string           `json:"remark"`
	State      domain.BillState `json:"state"`
	FailReason string           `json:"fail_reason,omitempty"`
	CreateTime string           `json:"create_time"`
	UpdateTime string           `json:"update_time"`
}

func newLogItem(bill *domain.TransferBill) LogItem {
	return LogItem{
		OutBillNo:  bill.OutBillNo,
		Amount:     bill.Amount,
		AmountYuan: decimal.New(bill.Amount, fenExp).StringFixed(2), //nolint:mnd
		Remark:     bill.Remark,
		State:      bill.State,
		FailReason: bill.FailReason,
		CreateTime: bill.CreatedAt.Format(time.RFC3339),
		UpdateTime: bill.UpdatedAt.Format(time.RFC3339),
	}
}

// Logs GET TransferGroup + LogsRoute. Счета юзера, свежие первыми.
func (h *TransferHandler) Logs(c *gin.Context) {
	var query logsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultLogsLimit
	}
	query.Limit = min(query.Limit, maxLogsLimit)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bills, err := h.svs.Logs(reqCtx, query.OpenID, query.Limit, query.Offset)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	var response = make([]LogItem, len(bills))
	for i := range bills {
		response[i] = newLogItem(&bills[i])
	}
	c.JSON(http.StatusOK, gin.H{"data": response})
}

// Pending GET TransferGroup + PendingRoute. Последний счёт, ждущий подтверждения, либо null.
func (h *TransferHandler) Pending(c *gin.Context) {
	var query openIDQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.svs.PendingBill(reqCtx, query.OpenID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if bill == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	type pendingItem struct {
		LogItem
		PackageInfo string `json:"package_info"`
	}
	c.JSON(http.StatusOK, gin.H{"data": pendingItem{LogItem: newLogItem(bill), PackageInfo: bill.PackageInfo}})
}
