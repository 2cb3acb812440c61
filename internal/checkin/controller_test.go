package checkin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type recordingToaster struct {
	mu   sync.Mutex
	msgs []string
}

func (t *recordingToaster) Toast(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, msg)
}

func (t *recordingToaster) last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.msgs) == 0 {
		return ""
	}
	return t.msgs[len(t.msgs)-1]
}

type ControllerTestSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	toaster *recordingToaster
	store   *FileStore
	ctrl    *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.toaster = new(recordingToaster)
	s.store = NewFileStore(filepath.Join(s.T().TempDir(), "pending.json"))

	s.mux.HandleFunc("GET /user/balance", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(DefaultOpenID, r.URL.Query().Get("openid"))
		s.writeJSON(w, http.StatusOK, map[string]int64{"balance": 300})
	})
	s.mux.HandleFunc("GET /transfer/logs", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"out_bill_no": "T1", "amount": 100, "state": "SUCCESS"},
		}})
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.ctrl = New(Options{
		BaseURL: s.server.URL,
		AppID:   "wxb9f4f763e5d4a6de",
		MchID:   "1368139500",
		Toaster: s.toaster,
		Store:   s.store,
		Logger:  logger,
	})
}

func (s *ControllerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ControllerTestSuite) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.NoError(json.NewEncoder(w).Encode(payload))
}

func (s *ControllerTestSuite) readJSON(r *http.Request, out any) {
	s.Require().NoError(json.NewDecoder(r.Body).Decode(out))
}

func (s *ControllerTestSuite) TestDefaults() {
	state := s.ctrl.State()
	s.Equal(DefaultOpenID, state.OpenID)
	s.Zero(state.Balance)
	s.NotNil(state.TransferLogs)
	s.Empty(state.TransferLogs)
	s.False(state.Loading)
}

func (s *ControllerTestSuite) TestSignIn() {
	s.mux.HandleFunc("POST /transfer/to_user", func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		s.readJSON(r, &req)
		s.Equal(DefaultOpenID, req.OpenID)
		s.Equal(int64(DefaultAmount), req.Amount)
		s.Equal(DefaultRemark, req.Remark)
		s.NotEmpty(req.Time)
		s.True(s.ctrl.State().Loading)

		s.writeJSON(w, http.StatusOK, SignInResponse{
			Code:        3,
			Msg:         "待用户确认收款",
			OutBillNo:   "T01JN5ZQ",
			PackageInfo: "affffddafdfafddffda==",
			State:       "WAIT_USER_CONFIRM",
			AppID:       "wxb9f4f763e5d4a6de",
			MchID:       "1368139500",
		})
	})

	res, err := s.ctrl.SignIn(s.T().Context())
	s.Require().NoError(err)
	s.Equal(3, res.Code)
	s.Equal("待用户确认收款", s.toaster.last())

	state := s.ctrl.State()
	s.False(state.Loading)
	s.Equal("T01JN5ZQ", state.OutBillNo)
	s.Equal("affffddafdfafddffda==", state.PackageInfo)
	s.Equal(int64(300), state.Balance)
	s.Len(state.TransferLogs, 1)

	stored, loadErr := s.store.Load()
	s.Require().NoError(loadErr)
	s.Equal("T01JN5ZQ", stored.OutBillNo)
}

func (s *ControllerTestSuite) TestSignIn_FinalAnswerKeepsPending() {
	responses := []SignInResponse{
		{Code: 3, Msg: "待用户确认收款", OutBillNo: "T_WAIT", PackageInfo: "PKG_WAIT", State: "WAIT_USER_CONFIRM"},
		{Code: 1, Msg: "转账失败", OutBillNo: "T_FAIL", State: "FAIL"},
		{Code: 0, Msg: "转账成功", OutBillNo: "T_SUCCESS", State: "SUCCESS"},
	}
	var calls int
	s.mux.HandleFunc("POST /transfer/to_user", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, responses[calls])
		calls++
	})

	for range responses {
		_, err := s.ctrl.SignIn(s.T().Context())
		s.Require().NoError(err)
	}

	state := s.ctrl.State()
	s.Equal("T_WAIT", state.OutBillNo)
	s.Equal("PKG_WAIT", state.PackageInfo)

	stored, err := s.store.Load()
	s.Require().NoError(err)
	s.Equal("T_WAIT", stored.OutBillNo)
	s.Equal("PKG_WAIT", stored.PackageInfo)
}

func (s *ControllerTestSuite) TestSignIn_EmptyMsg() {
	s.mux.HandleFunc("POST /transfer/to_user", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"code": 0})
	})

	_, err := s.ctrl.SignIn(s.T().Context())
	s.Require().NoError(err)
	s.Equal("签到成功", s.toaster.last())
	s.Empty(s.ctrl.State().OutBillNo)
}

func (s *ControllerTestSuite) TestSignIn_ErrorStatus() {
	s.mux.HandleFunc("POST /transfer/to_user", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusTooManyRequests, map[string]string{"msg": "签到过于频繁"})
	})

	_, err := s.ctrl.SignIn(s.T().Context())
	var statusErr *StatusError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusTooManyRequests, statusErr.StatusCode)
	s.Equal("签到过于频繁", s.toaster.last())
	s.False(s.ctrl.State().Loading)
}

func (s *ControllerTestSuite) TestSignIn_NetworkError() {
	s.server.Close()

	_, err := s.ctrl.SignIn(s.T().Context())
	s.Require().Error(err)
	s.Equal("网络错误", s.toaster.last())
	s.False(s.ctrl.State().Loading)
}

func (s *ControllerTestSuite) TestSignIn_Overlapping() {
	entered := make(chan struct{})
	release := make(chan struct{})
	s.mux.HandleFunc("POST /transfer/to_user", func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		s.writeJSON(w, http.StatusOK, map[string]any{"code": 0, "msg": "转账成功"})
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.ctrl.SignIn(context.Background())
		done <- err
	}()
	<-entered

	_, err := s.ctrl.SignIn(s.T().Context())
	s.Require().ErrorIs(err, ErrSignInInProgress)

	close(release)
	s.Require().NoError(<-done)
}

func (s *ControllerTestSuite) TestConfirmTransfer() {
	s.Require().ErrorIs(s.ctrl.ConfirmTransfer(s.T().Context()), ErrNothingToConfirm)

	calls := 0
	s.mux.HandleFunc("POST /transfer/confirm", func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req confirmRequest
		s.readJSON(r, &req)
		s.Equal("wxb9f4f763e5d4a6de", req.AppID)
		s.Equal("1368139500", req.MchID)
		s.Equal("affffddafdfafddffda==", req.PackageInfo)
		s.Empty(req.OutBillNo)
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"msg": "转账处理中"})
	})
	s.ctrl.setPending(Pending{OutBillNo: "T1", PackageInfo: "affffddafdfafddffda=="})

	s.Require().Error(s.ctrl.ConfirmTransfer(s.T().Context()))
	s.Equal("网络异常", s.toaster.last())
	s.Equal("T1", s.ctrl.State().OutBillNo)

	s.Require().NoError(s.ctrl.ConfirmTransfer(s.T().Context()))
	s.Empty(s.ctrl.State().OutBillNo)
	s.Empty(s.ctrl.State().PackageInfo)

	stored, err := s.store.Load()
	s.Require().NoError(err)
	s.True(stored.IsEmpty())
}

func (s *ControllerTestSuite) TestConfirmTransfer_ByOutBillNo() {
	s.mux.HandleFunc("POST /transfer/confirm", func(w http.ResponseWriter, r *http.Request) {
		var req confirmRequest
		s.readJSON(r, &req)
		s.Equal(confirmRequest{OutBillNo: "T1"}, req)
		s.writeJSON(w, http.StatusOK, map[string]string{"msg": "转账成功"})
	})
	s.ctrl.setPending(Pending{OutBillNo: "T1"})

	s.Require().NoError(s.ctrl.ConfirmTransfer(s.T().Context()))
}

func (s *ControllerTestSuite) TestNotify() {
	_, err := s.ctrl.Notify(s.T().Context())
	s.Require().ErrorIs(err, ErrNothingToConfirm)

	s.mux.HandleFunc("POST /transfer/notify", func(w http.ResponseWriter, r *http.Request) {
		var req notifyRequest
		s.readJSON(r, &req)
		s.Equal("T1", req.OutBillNo)
		s.writeJSON(w, http.StatusOK, map[string]string{"msg": "转账成功", "state": "SUCCESS"})
	})
	s.ctrl.setPending(Pending{OutBillNo: "T1"})

	msg, err := s.ctrl.Notify(s.T().Context())
	s.Require().NoError(err)
	s.Equal("转账成功", msg)
	s.Equal("转账成功", s.toaster.last())
}

func (s *ControllerTestSuite) TestFetchAmount() {
	s.mux.HandleFunc("GET /transfer/amount", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, 450)
	})

	amount, err := s.ctrl.FetchAmount(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(450), amount)
}

func (s *ControllerTestSuite) TestFetch_Silent() {
	s.server.Close()

	s.Require().Error(s.ctrl.FetchBalance(s.T().Context()))
	s.Require().Error(s.ctrl.FetchLogs(s.T().Context()))
	s.Empty(s.toaster.msgs)
}

func (s *ControllerTestSuite) TestLoad_RestoresFromStore() {
	s.Require().NoError(s.store.Save(Pending{OutBillNo: "TSTORED", PackageInfo: "stored=="}))
	s.mux.HandleFunc("GET /transfer/pending", func(http.ResponseWriter, *http.Request) {
		s.Fail("pending must not be fetched when stored")
	})

	s.Require().NoError(s.ctrl.Load(s.T().Context()))
	state := s.ctrl.State()
	s.Equal("TSTORED", state.OutBillNo)
	s.Equal(int64(300), state.Balance)
	s.Len(state.TransferLogs, 1)
}

func (s *ControllerTestSuite) TestLoad_RestoresFromBackend() {
	s.mux.HandleFunc("GET /transfer/pending", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"data": map[string]string{
			"out_bill_no":  "TREMOTE",
			"package_info": "remote==",
		}})
	})

	s.Require().NoError(s.ctrl.Load(s.T().Context()))
	s.Equal("TREMOTE", s.ctrl.State().OutBillNo)

	stored, err := s.store.Load()
	s.Require().NoError(err)
	s.Equal("remote==", stored.PackageInfo)
}
