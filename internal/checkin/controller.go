// Package checkin логика страницы чекина с красными конвертами.
package checkin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	DefaultOpenID = "test_openid_001"
	DefaultAmount = 100
	DefaultRemark = "红包签到"

	defaultTimeout = 15 * time.Second

	routeToUser  = "/transfer/to_user"
	routeConfirm = "/transfer/confirm"
	routeNotify  = "/transfer/notify"
	routeAmount  = "/transfer/amount"
	routeLogs    = "/transfer/logs"
	routePending = "/transfer/pending"
	routeBalance = "/user/balance"

	toastSignedIn  = "签到成功"
	toastNetError  = "网络错误"
	toastNetAbnorm = "网络异常"
)

// Toaster показывает юзеру короткие сообщения.
type Toaster interface {
	Toast(msg string)
}

// State снимок состояния страницы.
type State struct {
	OpenID       string
	Balance      int64
	TransferLogs []json.RawMessage
	Loading      bool
	OutBillNo    string
	PackageInfo  string
}

type Options struct {
	BaseURL string
	OpenID  string
	// Amount сумма одного конверта, в фэнях.
	Amount int64
	Remark string
	// AppID и MchID уходят при подтверждении, если ответа чекина их не было.
	AppID   string
	MchID   string
	Toaster Toaster
	// Store необязателен. Без него ждущий перевод живёт только в памяти.
	Store   PendingStore
	Logger  *logrus.Logger
	Timeout time.Duration
}

type Controller struct {
	mu      sync.Mutex
	state   State
	pending Pending

	http    *resty.Client
	toaster Toaster
	store   PendingStore
	l       *logrus.Entry

	amount int64
	remark string
	appID  string
	mchID  string
	now    func() time.Time
}

func New(opts Options) *Controller {
	if opts.OpenID == "" {
		opts.OpenID = DefaultOpenID
	}
	if opts.Amount <= 0 {
		opts.Amount = DefaultAmount
	}
	if opts.Remark == "" {
		opts.Remark = DefaultRemark
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Controller{
		state:   State{OpenID: opts.OpenID, TransferLogs: []json.RawMessage{}},
		http:    resty.New().SetBaseURL(opts.BaseURL).SetTimeout(opts.Timeout),
		toaster: opts.Toaster,
		store:   opts.Store,
		l: opts.Logger.WithFields(logrus.Fields{
			"component": "checkin",
			"openid":    opts.OpenID,
		}),
		amount: opts.Amount,
		remark: opts.Remark,
		appID:  opts.AppID,
		mchID:  opts.MchID,
		now:    time.Now,
	}
}

// State возвращает копию состояния страницы.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.TransferLogs = append([]json.RawMessage(nil), c.state.TransferLogs...)
	state.OutBillNo = c.pending.OutBillNo
	state.PackageInfo = c.pending.PackageInfo
	return state
}

func (c *Controller) openID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.OpenID
}

func (c *Controller) toast(msg string) {
	if c.toaster != nil {
		c.toaster.Toast(msg)
	}
}

// Load обновляет баланс и историю и восстанавливает ждущий перевод.
// Ошибки запросов только логируются. Возвращаемая ошибка говорит о сломанном хранилище.
func (c *Controller) Load(ctx context.Context) error {
	_ = c.FetchBalance(ctx)
	_ = c.FetchLogs(ctx)
	return c.restorePending(ctx)
}

func (c *Controller) restorePending(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	p, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("restore pending: %w", err)
	}

	if p.IsEmpty() {
		var res pendingResponse
		if fetchErr := c.get(ctx, routePending, &res); fetchErr != nil {
			c.l.WithError(fetchErr).Warn("fetch pending transfer")
			return nil
		}
		if res.Data == nil || res.Data.IsEmpty() {
			return nil
		}
		p = *res.Data
		if saveErr := c.store.Save(p); saveErr != nil {
			return fmt.Errorf("restore pending: %w", saveErr)
		}
	}

	c.mu.Lock()
	c.pending = p
	c.mu.Unlock()
	return nil
}

// SignIn запрашивает красный конверт. Любой ответ бэкенда показывается тостом, затем обновляются баланс и история.
// Пока предыдущий чекин не завершён, возвращает ErrSignInInProgress и ничего не отправляет.
func (c *Controller) SignIn(ctx context.Context) (*SignInResponse, error) {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return nil, ErrSignInInProgress
	}
	c.state.Loading = true
	openID := c.state.OpenID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state.Loading = false
		c.mu.Unlock()
	}()

	var res SignInResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(signInRequest{
			OpenID: openID,
			Amount: c.amount,
			Remark: c.remark,
			Time:   c.now().Format(time.DateTime),
		}).
		Post(routeToUser)
	if err != nil {
		c.toast(toastNetError)
		return nil, fmt.Errorf("sign in: %w", err)
	}
	// в теле ошибки тоже есть msg.
	if len(resp.Body()) > 0 {
		if unmarshalErr := json.Unmarshal(resp.Body(), &res); unmarshalErr != nil {
			c.l.WithError(unmarshalErr).Warn("parse sign-in response")
		}
	}

	if res.Msg == "" {
		c.toast(toastSignedIn)
	} else {
		c.toast(res.Msg)
	}

	// FAIL/SUCCESS подтверждать не нужно, ждущий перевод не трогаем.
	if res.needsConfirmation() {
		c.setPending(Pending{
			OutBillNo:   res.OutBillNo,
			PackageInfo: res.PackageInfo,
			AppID:       res.AppID,
			MchID:       res.MchID,
		})
	}

	_ = c.FetchBalance(ctx)
	_ = c.FetchLogs(ctx)

	if resp.IsError() {
		return &res, NewStatusError(resp.StatusCode(), res.Msg)
	}
	return &res, nil
}

func (c *Controller) setPending(p Pending) {
	c.mu.Lock()
	c.pending = p
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	var err error
	if p.IsEmpty() {
		err = c.store.Clear()
	} else {
		err = c.store.Save(p)
	}
	if err != nil {
		c.l.WithError(err).Warn("persist pending transfer")
	}
}

// ConfirmTransfer сообщает бэкенду, что юзер подтвердил перевод. На HTTP 200 ждущий перевод сбрасывается
// независимо от содержимого ответа.
func (c *Controller) ConfirmTransfer(ctx context.Context) error {
	c.mu.Lock()
	p := c.pending
	c.mu.Unlock()

	var body confirmRequest
	switch {
	case p.PackageInfo != "":
		body = confirmRequest{
			AppID:       firstNonBlank(p.AppID, c.appID),
			MchID:       firstNonBlank(p.MchID, c.mchID),
			PackageInfo: p.PackageInfo,
		}
	case p.OutBillNo != "":
		body = confirmRequest{OutBillNo: p.OutBillNo}
	default:
		return ErrNothingToConfirm
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(routeConfirm)
	if err != nil {
		c.toast(toastNetAbnorm)
		return fmt.Errorf("confirm transfer: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.toast(toastNetAbnorm)
		return fmt.Errorf("confirm transfer: %w", NewStatusError(resp.StatusCode(), resp.String()))
	}

	c.setPending(Pending{})
	return nil
}

// Notify просит бэкенд синхронизировать ждущий счёт и показывает его сообщение.
func (c *Controller) Notify(ctx context.Context) (string, error) {
	c.mu.Lock()
	outBillNo := c.pending.OutBillNo
	c.mu.Unlock()
	if outBillNo == "" {
		return "", ErrNothingToConfirm
	}

	var res msgResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(notifyRequest{OutBillNo: outBillNo}).Post(routeNotify)
	if err != nil {
		c.toast(toastNetError)
		return "", fmt.Errorf("notify: %w", err)
	}
	if unmarshalErr := json.Unmarshal(resp.Body(), &res); unmarshalErr != nil {
		return "", fmt.Errorf("notify: %w", unmarshalErr)
	}
	c.toast(res.Msg)
	if resp.IsError() {
		return res.Msg, NewStatusError(resp.StatusCode(), res.Msg)
	}
	return res.Msg, nil
}

// FetchBalance обновляет баланс. Юзер ошибок не видит.
func (c *Controller) FetchBalance(ctx context.Context) error {
	var res balanceResponse
	if err := c.get(ctx, routeBalance, &res); err != nil {
		c.l.WithError(err).Warn("fetch balance")
		return err
	}
	c.mu.Lock()
	c.state.Balance = res.Balance
	c.mu.Unlock()
	return nil
}

// FetchAmount возвращает баланс из /transfer/amount. Состояние страницы не меняется.
func (c *Controller) FetchAmount(ctx context.Context) (int64, error) {
	var amount int64
	if err := c.get(ctx, routeAmount, &amount); err != nil {
		c.l.WithError(err).Warn("fetch amount")
		return 0, err
	}
	return amount, nil
}

// FetchLogs обновляет историю переводов. Юзер ошибок не видит.
func (c *Controller) FetchLogs(ctx context.Context) error {
	var res logsResponse
	if err := c.get(ctx, routeLogs, &res); err != nil {
		c.l.WithError(err).Warn("fetch logs")
		return err
	}
	if res.Data == nil {
		res.Data = []json.RawMessage{}
	}
	c.mu.Lock()
	c.state.TransferLogs = res.Data
	c.mu.Unlock()
	return nil
}

// get запрашивает route с параметром openid и раскладывает 2xx тело в out.
func (c *Controller) get(ctx context.Context, route string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("openid", c.openID()).
		Get(route)
	if err != nil {
		return fmt.Errorf("get %s: %w", route, err)
	}
	if resp.IsError() {
		return fmt.Errorf("get %s: %w", route, NewStatusError(resp.StatusCode(), resp.String()))
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("get %s: %w", route, err)
	}
	return nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
