package wxpay

import (
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	merchantKey *rsa.PrivateKey
	platformKey *rsa.PrivateKey
	server      *httptest.Server
	client      *Client
	handler     http.HandlerFunc
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupSuite() {
	s.merchantKey, s.platformKey = testKeys(s.T())
}

func (s *ClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.client = New(s.server.URL, testMerchant(s.merchantKey, s.platformKey))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

// writeSigned отвечает как платформа, подписывая тело ключом платформы.
func (s *ClientTestSuite) writeSigned(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)
	for k, v := range signHeaders(s.T(), s.platformKey, body, time.Now()) {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	s.NoError(err)
}

// verifyAuthorization проверяет подпись мерчанта во входящем запросе.
func (s *ClientTestSuite) verifyAuthorization(r *http.Request, body []byte) {
	auth := r.Header.Get("Authorization")
	s.Require().True(strings.HasPrefix(auth, authorizationSchema+" "), auth)

	fields := make(map[string]string)
	for _, part := range strings.Split(strings.TrimPrefix(auth, authorizationSchema+" "), ",") {
		k, v, ok := strings.Cut(part, "=")
		s.Require().True(ok)
		fields[k] = strings.Trim(v, `"`)
	}
	s.Equal(testMchID, fields["mchid"])
	s.Equal(testSerialNo, fields["serial_no"])
	s.Equal(testPublicKeyID, r.Header.Get(headerSerial))

	message := r.Method + "\n" + r.URL.RequestURI() + "\n" + fields["timestamp"] + "\n" +
		fields["nonce_str"] + "\n" + string(body) + "\n"
	s.NoError(VerifySHA256WithRSA(message, fields["signature"], &s.merchantKey.PublicKey))
}

func (s *ClientTestSuite) TestTransferToUser() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteTransferBills, r.URL.Path)
		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)
		s.verifyAuthorization(r, body)

		var req TransferRequest
		s.Require().NoError(json.Unmarshal(body, &req))
		s.Equal(testAppID, req.AppID)
		s.Equal("T01J9ZQ", req.OutBillNo)
		s.Equal(int64(100), req.TransferAmount)

		s.writeSigned(w, http.StatusOK, TransferResponse{
			OutBillNo:      req.OutBillNo,
			TransferBillNo: "1330000071100999991182020050700019480001",
			CreateTime:     "2015-05-20T13:29:35.120+08:00",
			State:          domain.BillStateWaitUserConfirm,
			PackageInfo:    "affffddafdfafddffda==",
		})
	}

	resp, err := s.client.TransferToUser(s.T().Context(), TransferRequest{
		OutBillNo:       "T01J9ZQ",
		TransferSceneID: domain.TransferSceneCashMarketing,
		OpenID:          "o-MYE42l80oelYMDE34nYD456Xoy",
		TransferAmount:  100,
		TransferRemark:  "红包签到",
	})
	s.Require().NoError(err)
	s.Equal(domain.BillStateWaitUserConfirm, resp.State)
	s.Equal("affffddafdfafddffda==", resp.PackageInfo)
}

func (s *ClientTestSuite) TestQueryByOutBillNo() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.verifyAuthorization(r, nil)

		switch r.URL.Path {
		case "/v3/fund-app/mch-transfer/transfer-bills/out-bill-no/T1":
			s.writeSigned(w, http.StatusOK, Bill{
				MchID:          testMchID,
				OutBillNo:      "T1",
				State:          domain.BillStateSuccess,
				TransferAmount: 100,
			})
		default:
			s.writeSigned(w, http.StatusNotFound, map[string]string{
				"code":    "NOT_FOUND",
				"message": "记录不存在",
			})
		}
	}

	bill, err := s.client.QueryByOutBillNo(s.T().Context(), "T1")
	s.Require().NoError(err)
	s.Equal(domain.BillStateSuccess, bill.State)
	s.Equal(int64(100), bill.TransferAmount)

	_, err = s.client.QueryByOutBillNo(s.T().Context(), "T2")
	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.True(apiErr.IsNotFound())
	s.Equal("记录不存在", apiErr.Message)
}

func (s *ClientTestSuite) TestErrors() {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(err error)
	}{
		{
			name: "too many requests",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "5")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			check: func(err error) {
				var tooMany *TooManyRequestsError
				s.Require().ErrorAs(err, &tooMany)
				s.Equal(5*time.Second, tooMany.RetryAfter)
			},
		}, {
			name: "bad request",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"code":"PARAM_ERROR","message":"openid无效"}`))
			},
			check: func(err error) {
				var apiErr *APIError
				s.Require().ErrorAs(err, &apiErr)
				s.Equal("PARAM_ERROR", apiErr.Code)
				s.False(apiErr.IsNotFound())
				s.False(apiErr.IsUncertain())
			},
		}, {
			name: "system error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"SYSTEM_ERROR","message":"系统错误"}`))
			},
			check: func(err error) {
				var apiErr *APIError
				s.Require().ErrorAs(err, &apiErr)
				s.Equal("SYSTEM_ERROR", apiErr.Code)
				s.True(apiErr.IsUncertain())
			},
		}, {
			name: "unsigned response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"state":"SUCCESS"}`))
			},
			check: func(err error) {
				s.Require().ErrorIs(err, ErrMissingSignature)
			},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.handler = t.handler
			_, err := s.client.TransferToUser(s.T().Context(), TransferRequest{OutBillNo: "T3", TransferAmount: 1})
			t.check(err)
		})
	}
}

func (s *ClientTestSuite) TestParseRetryAfter() {
	s.Equal(10*time.Second, parseRetryAfter("10"))
	s.Equal(defaultRetryAfter, parseRetryAfter(""))
	s.Equal(defaultRetryAfter, parseRetryAfter("0"))
	s.Equal(defaultRetryAfter, parseRetryAfter("500"))
}
