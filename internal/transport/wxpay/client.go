// Package wxpay клиент WeChat Pay APIv3 для переводов мерчанта юзерам.
package wxpay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultHost = "https://api.mch.weixin.qq.com"

	RouteTransferBills  = "/v3/fund-app/mch-transfer/transfer-bills"
	RouteBillByOutNo    = "/v3/fund-app/mch-transfer/transfer-bills/out-bill-no/%s"
	defaultTimeout      = 10 * time.Second
	defaultRetryAfter   = 60 * time.Second
	minRetryAfterSecond = 1
	maxRetryAfterSecond = 120
)

type Client struct {
	merchant *Merchant
	http     *resty.Client
	now      func() time.Time
}

func New(host string, merchant *Merchant) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		merchant: merchant,
		http:     resty.New().SetBaseURL(host).SetTimeout(defaultTimeout),
		now:      time.Now,
	}
}

func (c *Client) Merchant() *Merchant {
	return c.merchant
}

// TransferToUser запускает перевод мерчанта. Обычно в ответе статус WAIT_USER_CONFIRM и package_info, который
// мини-программа передаёт в wx.requestMerchantTransfer.
func (c *Client) TransferToUser(ctx context.Context, request TransferRequest) (*TransferResponse, error) {
	if request.AppID == "" {
		request.AppID = c.merchant.AppID
	}
	var response TransferResponse
	if err := c.do(ctx, http.MethodPost, RouteTransferBills, request, &response); err != nil {
		return nil, fmt.Errorf("transfer to user %s: %w", request.OutBillNo, err)
	}
	return &response, nil
}

// QueryByOutBillNo возвращает текущий статус счёта. Для неизвестного счёта вернётся *APIError с IsNotFound.
func (c *Client) QueryByOutBillNo(ctx context.Context, outBillNo string) (*Bill, error) {
	var bill Bill
	path := fmt.Sprintf(RouteBillByOutNo, url.PathEscape(outBillNo))
	if err := c.do(ctx, http.MethodGet, path, nil, &bill); err != nil {
		return nil, fmt.Errorf("query bill %s: %w", outBillNo, err)
	}
	return &bill, nil
}

// do подписывает и отправляет запрос, проверяет подпись ответа и раскладывает тело в out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var marshalErr error
		if payload, marshalErr = json.Marshal(body); marshalErr != nil {
			return fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
	}

	authorization, authErr := BuildAuthorization(
		c.merchant.MchID,
		c.merchant.CertificateSerialNo,
		c.merchant.PrivateKey,
		method,
		path,
		payload,
		c.now(),
	)
	if authErr != nil {
		return fmt.Errorf("build authorization: %w", authErr)
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader(headerSerial, c.merchant.PublicKeyID).
		SetHeader("Authorization", authorization)
	if payload != nil {
		req.SetBody(payload)
	}

	resp, doErr := req.Execute(method, path)
	if doErr != nil {
		return fmt.Errorf("do request: %w", doErr)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return NewTooManyRequestsError(parseRetryAfter(resp.Header().Get("Retry-After")))
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return NewAPIError(resp.StatusCode(), resp.Header(), resp.Body())
	}

	if err := ValidateResponse(
		c.merchant.PublicKeyID, c.merchant.PublicKey, resp.Header(), resp.Body(), c.now(),
	); err != nil {
		return fmt.Errorf("validate response: %w", err)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("parse response: %s", err.Error())
	}
	return nil
}

// parseRetryAfter ограничивает секунды Retry-After отрезком [1, 120]. Всё остальное даёт 60 секунд.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < minRetryAfterSecond || seconds > maxRetryAfterSecond {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
