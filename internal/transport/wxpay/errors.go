package wxpay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrInvalidPEM         = errors.New("invalid PEM block")
	ErrNotRSAKey          = errors.New("not an RSA key")
	ErrInvalidAPIv3Key    = errors.New("无效的ApiV3Key，长度必须为32个字节")
	ErrMissingSignature   = errors.New("missing Wechatpay signature headers")
	ErrSerialMismatch     = errors.New("Wechatpay-Serial does not match public key id")
	ErrTimestampExpired   = errors.New("Wechatpay-Timestamp out of range")
	ErrInvalidSignature   = errors.New("invalid Wechatpay signature")
	ErrUnsupportedCipher  = errors.New("unsupported resource algorithm")
	ErrResourceDecryption = errors.New("resource decryption failed")
)

const (
	errCodeNotFound         = "NOT_FOUND"
	errCodeSystemError      = "SYSTEM_ERROR"
	errCodeFrequencyLimited = "FREQUENCY_LIMITED"
)

// APIError возвращается на любой не 2xx ответ WeChat Pay, кроме 429.
type APIError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func NewAPIError(statusCode int, header http.Header, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
	}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}

func (e *APIError) Error() string {
	return fmt.Sprintf(
		"wxpay api error: status %d, code %q, message %q, request id %q",
		e.StatusCode, e.Code, e.Message, e.Header.Get(headerRequestID),
	)
}

// IsNotFound счёт неизвестен WeChat Pay.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == errCodeNotFound
}

// IsUncertain ответ не говорит, принят ли перевод: 5xx, SYSTEM_ERROR или FREQUENCY_LIMITED.
// Такой перевод надо уточнить запросом по out_bill_no, а не считать отклонённым.
func (e *APIError) IsUncertain() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.Code == errCodeSystemError ||
		e.Code == errCodeFrequencyLimited
}

type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestsError(retryAfter time.Duration) *TooManyRequestsError {
	return &TooManyRequestsError{RetryAfter: retryAfter}
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("Too many requests. Need retry after %.f seconds", e.RetryAfter.Seconds())
}
