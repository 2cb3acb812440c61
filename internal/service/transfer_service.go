package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/repository/repoargs"
	"github.com/fsdevblog/wepay-checkin/internal/transport/wxpay"
	"github.com/fsdevblog/wepay-checkin/pkg/uow"
)

const (
	userRecvPerception  = "现金红包"
	failReasonAPIError  = "API_ERROR"
	failReasonNotFound  = "NOT_FOUND"
	defaultNotFoundWait = 10 * time.Minute
)

// sceneReportInfos обязательны для сценария "现金营销".
var sceneReportInfos = []wxpay.SceneReportInfo{
	{InfoType: "活动名称", InfoContent: "签到红包"},
	{InfoType: "奖励说明", InfoContent: "签到奖励"},
}

type TransferOptions struct {
	AppID     string
	MchID     string
	NotifyURL string
	// NotFoundGrace сколько счёт, неизвестный WeChat Pay, ждёт, прежде чем упасть в FAIL.
	NotFoundGrace time.Duration
}

type TransferService struct {
	uow       uow.UOW
	billRepo  TransferBillRepository
	userRepo  UserRepository
	pay       PayClient
	guard     SignInGuard
	opts      TransferOptions
	newBillNo func() string
	now       func() time.Time
}

func NewTransferService(u uow.UOW, pay PayClient, guard SignInGuard, opts TransferOptions) (*TransferService, error) {
	billRepo, err := uow.GetRepositoryAs[TransferBillRepository](
		u, uow.RepositoryName(repoargs.TransferBillRepoName),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if opts.NotFoundGrace <= 0 {
		opts.NotFoundGrace = defaultNotFoundWait
	}
	return &TransferService{
		uow:       u,
		billRepo:  billRepo,
		userRepo:  userRepo,
		pay:       pay,
		guard:     guard,
		opts:      opts,
		newBillNo: NewOutBillNo,
		now:       time.Now,
	}, nil
}

type SignInArgs struct {
	OpenID string
	Amount int64
	Remark string
}

// SignIn создаёт счёт перевода и просит WeChat Pay отправить его юзеру.
//
// Алгоритм работы:
//  1. Берёт гард чекина openid.
//  2. Сохраняет счёт в domain.BillStateCreated до вызова API, потерянный ответ подберёт сверка.
//  3. Отправляет перевод и применяет полученный статус.
//
// Окончательный отказ WeChat Pay переводит счёт в FAIL и возвращает *domain.PayRejectedError. Неопределённый
// ответ (5xx, SYSTEM_ERROR, FREQUENCY_LIMITED) оставляет счёт CREATED.
func (s *TransferService) SignIn(ctx context.Context, args SignInArgs) (*domain.TransferBill, error) {
	release, guardErr := s.guard.Acquire(ctx, args.OpenID)
	if guardErr != nil {
		return nil, fmt.Errorf("sign in %s: %w", args.OpenID, guardErr)
	}
	defer release(context.WithoutCancel(ctx))

	if err := s.userRepo.Ensure(ctx, args.OpenID); err != nil {
		return nil, fmt.Errorf("sign in %s: %w", args.OpenID, err)
	}

	bill, createErr := s.billRepo.Create(ctx, repoargs.CreateTransferBill{
		OutBillNo: s.newBillNo(),
		OpenID:    args.OpenID,
		AppID:     s.opts.AppID,
		MchID:     s.opts.MchID,
		Amount:    args.Amount,
		Remark:    args.Remark,
		SceneID:   domain.TransferSceneCashMarketing,
	})
	if createErr != nil {
		return nil, fmt.Errorf("sign in %s: %w", args.OpenID, createErr)
	}

	resp, payErr := s.pay.TransferToUser(ctx, wxpay.TransferRequest{
		AppID:                    bill.AppID,
		OutBillNo:                bill.OutBillNo,
		TransferSceneID:          bill.SceneID,
		OpenID:                   bill.OpenID,
		TransferAmount:           bill.Amount,
		TransferRemark:           bill.Remark,
		NotifyURL:                s.opts.NotifyURL,
		UserRecvPerception:       userRecvPerception,
		TransferSceneReportInfos: sceneReportInfos,
	})
	if payErr != nil {
		var apiErr *wxpay.APIError
		// счёт остаётся CREATED, его состояние выяснит сверка.
		if !errors.As(payErr, &apiErr) || apiErr.IsUncertain() {
			return nil, fmt.Errorf("sign in %s: %w", args.OpenID, payErr)
		}
		reason := apiErr.Code
		if reason == "" {
			reason = failReasonAPIError
		}
		failed, failErr := s.ApplyState(ctx, ApplyStateArgs{
			OutBillNo:  bill.OutBillNo,
			State:      domain.BillStateFail,
			FailReason: reason,
		})
		if failErr != nil {
			return nil, fmt.Errorf("sign in %s: %w", args.OpenID, errors.Join(payErr, failErr))
		}
		return nil, domain.NewPayRejectedError(failed, reason)
	}

	updated, applyErr := s.ApplyState(ctx, ApplyStateArgs{
		OutBillNo:      bill.OutBillNo,
		State:          resp.State,
		TransferBillNo: resp.TransferBillNo,
		PackageInfo:    resp.PackageInfo,
		FailReason:     resp.FailReason,
	})
	if applyErr != nil {
		return nil, fmt.Errorf("sign in %s: %w", args.OpenID, applyErr)
	}
	return updated, nil
}

type ApplyStateArgs struct {
	OutBillNo      string
	State          domain.BillState
	TransferBillNo string
	PackageInfo    string
	FailReason     string
}

func applyArgsFromBill(bill *wxpay.Bill) ApplyStateArgs {
	return ApplyStateArgs{
		OutBillNo:      bill.OutBillNo,
		State:          bill.State,
		TransferBillNo: bill.TransferBillNo,
		FailReason:     bill.FailReason,
	}
}

// ApplyState в одной транзакции переводит счёт в args.State и начисляет баланс, когда счёт входит в
// domain.BillStateSuccess. Финальные счета возвращаются без изменений, повторный вызов ничего не начислит.
func (s *TransferService) ApplyState(ctx context.Context, args ApplyStateArgs) (*domain.TransferBill, error) {
	if !args.State.IsKnown() {
		return nil, fmt.Errorf("apply state %q to %s: %w", args.State, args.OutBillNo, domain.ErrUnknownBillState)
	}

	var bill *domain.TransferBill
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		billRepo, repoErr := uow.GetAs[TransferBillRepository](tx, uow.RepositoryName(repoargs.TransferBillRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		updated, updErr := billRepo.UpdateState(c, repoargs.UpdateBillState{
			OutBillNo:      args.OutBillNo,
			State:          args.State,
			TransferBillNo: args.TransferBillNo,
			PackageInfo:    args.PackageInfo,
			FailReason:     args.FailReason,
		})
		if updErr != nil {
			if !errors.Is(updErr, domain.ErrRecordNotFound) {
				return updErr //nolint:wrapcheck
			}
			// счёта нет либо он уже финальный.
			existing, findErr := billRepo.FindByOutBillNo(c, args.OutBillNo)
			if findErr != nil {
				return findErr //nolint:wrapcheck
			}
			bill = existing
			return nil
		}
		bill = updated

		if updated.State != domain.BillStateSuccess {
			return nil
		}
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		_, balanceErr := userRepo.AddBalance(c, updated.OpenID, updated.Amount)
		return balanceErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("apply state %s to %s: %w", args.State, args.OutBillNo, txErr)
	}
	return bill, nil
}

type ConfirmArgs struct {
	AppID       string
	MchID       string
	PackageInfo string
	OutBillNo   string
}

// Confirm находит счёт по package_info или номеру и обновляет его статус из WeChat Pay.
func (s *TransferService) Confirm(ctx context.Context, args ConfirmArgs) (*domain.TransferBill, error) {
	if (args.AppID != "" && args.AppID != s.opts.AppID) || (args.MchID != "" && args.MchID != s.opts.MchID) {
		return nil, domain.ErrMerchantMismatch
	}

	var bill *domain.TransferBill
	var findErr error
	switch {
	case args.PackageInfo != "":
		bill, findErr = s.billRepo.FindByPackageInfo(ctx, args.PackageInfo)
	case args.OutBillNo != "":
		bill, findErr = s.billRepo.FindByOutBillNo(ctx, args.OutBillNo)
	default:
		return nil, domain.ErrBillIdentifier
	}
	if findErr != nil {
		return nil, fmt.Errorf("confirm: %w", findErr)
	}
	return s.sync(ctx, bill)
}

// SyncByOutBillNo обновляет статус сохранённого счёта из WeChat Pay.
func (s *TransferService) SyncByOutBillNo(ctx context.Context, outBillNo string) (*domain.TransferBill, error) {
	bill, err := s.billRepo.FindByOutBillNo(ctx, outBillNo)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}
	return s.sync(ctx, bill)
}

func (s *TransferService) sync(ctx context.Context, bill *domain.TransferBill) (*domain.TransferBill, error) {
	if bill.State.IsFinal() {
		return bill, nil
	}
	remote, err := s.pay.QueryByOutBillNo(ctx, bill.OutBillNo)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", bill.OutBillNo, err)
	}
	return s.ApplyState(ctx, applyArgsFromBill(remote))
}

// HandleNotification применяет расшифрованный колбэк перевода.
func (s *TransferService) HandleNotification(ctx context.Context, bill *wxpay.Bill) (*domain.TransferBill, error) {
	if bill.MchID != "" && bill.MchID != s.opts.MchID {
		return nil, fmt.Errorf("notification %s: %w", bill.OutBillNo, domain.ErrMerchantMismatch)
	}
	return s.ApplyState(ctx, applyArgsFromBill(bill))
}

// Logs возвращает счета openID, свежие первыми.
func (s *TransferService) Logs(ctx context.Context, openID string, limit, offset uint) ([]domain.TransferBill, error) {
	bills, err := s.billRepo.GetByOpenID(ctx, repoargs.ListBills{OpenID: openID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return bills, nil
}

// PendingBill возвращает последний счёт, ждущий подтверждения юзера, либо nil.
func (s *TransferService) PendingBill(ctx context.Context, openID string) (*domain.TransferBill, error) {
	bill, err := s.billRepo.FindLatestByState(ctx, openID, domain.BillStateWaitUserConfirm)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, err //nolint:wrapcheck
	}
	return bill, nil
}

// BillsForReconcile возвращает нефинальные счета, не проверявшиеся за последние recheckAfter.
func (s *TransferService) BillsForReconcile(
	ctx context.Context,
	limit uint,
	recheckAfter time.Duration,
) ([]domain.TransferBill, error) {
	bills, err := s.billRepo.GetForReconcile(ctx, repoargs.BillsForReconcile{
		Limit:         limit,
		CheckedBefore: s.now().Add(-recheckAfter),
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return bills, nil
}

type ReconcileResult struct {
	Bill   domain.TransferBill
	Remote *wxpay.Bill
	Error  error
}

// ApplyReconcile сохраняет результат прохода сверки.
//
// Алгоритм работы:
//  1. Результаты со счётом из WeChat Pay применяются по одному, каждый в своей транзакции.
//  2. Счета, которых WeChat Pay не знает дольше NotFoundGrace, уходят в FAIL с причиной NOT_FOUND.
//  3. Остальным счетам только обновляется checked_at.
//
// Возвращает все ошибки, объединённые через errors.Join.
func (s *TransferService) ApplyReconcile(ctx context.Context, results []ReconcileResult) error {
	var errs []error
	var touch = make([]string, 0, len(results))

	for _, result := range results {
		var args ApplyStateArgs
		var apiErr *wxpay.APIError
		switch {
		case result.Error == nil && result.Remote != nil:
			args = applyArgsFromBill(result.Remote)
		case errors.As(result.Error, &apiErr) && apiErr.IsNotFound() &&
			s.now().Sub(result.Bill.CreatedAt) > s.opts.NotFoundGrace:
			args = ApplyStateArgs{
				OutBillNo:  result.Bill.OutBillNo,
				State:      domain.BillStateFail,
				FailReason: failReasonNotFound,
			}
		default:
			touch = append(touch, result.Bill.OutBillNo)
			continue
		}
		if _, err := s.ApplyState(ctx, args); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.billRepo.TouchChecked(ctx, touch); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
