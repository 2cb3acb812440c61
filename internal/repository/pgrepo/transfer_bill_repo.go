package pgrepo

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/internal/repository/repoargs"
	"github.com/fsdevblog/wepay-checkin/pkg/uow"
)

const billColumns = `id, created_at, updated_at, checked_at, out_bill_no, transfer_bill_no, openid, appid, mch_id,
	amount, remark, scene_id, state, package_info, fail_reason`

type TransferBillRepository struct {
	conn uow.DBTX
}

func NewTransferBillRepository(conn uow.DBTX) *TransferBillRepository {
	return &TransferBillRepository{conn: conn}
}

func (r *TransferBillRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransferBill,
) (*domain.TransferBill, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO transfer_bills (out_bill_no, openid, appid, mch_id, amount, remark, scene_id, state)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+billColumns,
		args.OutBillNo, args.OpenID, args.AppID, args.MchID, args.Amount, args.Remark, args.SceneID,
		string(domain.BillStateCreated),
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "create transfer bill %s", args.OutBillNo)
	}
	return bill, nil
}

// UpdateState переводит нефинальный счёт в args.State и обновляет checked_at. Возвращает domain.ErrRecordNotFound,
// если счёта нет или он уже в финальном статусе.
func (r *TransferBillRepository) UpdateState(
	ctx context.Context,
	args repoargs.UpdateBillState,
) (*domain.TransferBill, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE transfer_bills SET
			state = $2,
			transfer_bill_no = COALESCE(NULLIF($3, ''), transfer_bill_no),
			package_info = COALESCE(NULLIF($4, ''), package_info),
			fail_reason = COALESCE(NULLIF($5, ''), fail_reason),
			updated_at = NOW(),
			checked_at = NOW()
		 WHERE out_bill_no = $1 AND NOT (state = ANY($6))
		 RETURNING `+billColumns,
		args.OutBillNo, string(args.State), args.TransferBillNo, args.PackageInfo, args.FailReason,
		finalStates(),
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "update transfer bill %s state", args.OutBillNo)
	}
	return bill, nil
}

// TouchChecked откладывает следующую сверку переданных счетов.
func (r *TransferBillRepository) TouchChecked(ctx context.Context, outBillNos []string) error {
	if len(outBillNos) == 0 {
		return nil
	}
	_, err := r.conn.Exec(ctx,
		`UPDATE transfer_bills SET checked_at = NOW() WHERE out_bill_no = ANY($1)`,
		outBillNos,
	)
	return convertErr(err, "touch transfer bills")
}

func (r *TransferBillRepository) FindByOutBillNo(ctx context.Context, outBillNo string) (*domain.TransferBill, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+billColumns+` FROM transfer_bills WHERE out_bill_no = $1`, outBillNo)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "find transfer bill %s", outBillNo)
	}
	return bill, nil
}

func (r *TransferBillRepository) FindByPackageInfo(
	ctx context.Context,
	packageInfo string,
) (*domain.TransferBill, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+billColumns+` FROM transfer_bills WHERE package_info = $1`, packageInfo)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "find transfer bill by package info")
	}
	return bill, nil
}

// FindLatestByState возвращает самый свежий счёт openID в статусе state.
func (r *TransferBillRepository) FindLatestByState(
	ctx context.Context,
	openID string,
	state domain.BillState,
) (*domain.TransferBill, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+billColumns+` FROM transfer_bills WHERE openid = $1 AND state = $2
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		openID, string(state),
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, convertErr(err, "find latest %s bill of %s", state, openID)
	}
	return bill, nil
}

// GetByOpenID возвращает счета юзера, отсортированные по дате создания по убыванию.
func (r *TransferBillRepository) GetByOpenID(
	ctx context.Context,
	args repoargs.ListBills,
) ([]domain.TransferBill, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+billColumns+` FROM transfer_bills WHERE openid = $1
		 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		args.OpenID, args.Limit, args.Offset,
	)
	if err != nil {
		return nil, convertErr(err, "get transfer bills of %s", args.OpenID)
	}
	bills, collectErr := collectBills(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "get transfer bills of %s", args.OpenID)
	}
	return bills, nil
}

// GetForReconcile возвращает нефинальные счета, проверенные до args.CheckedBefore. Сначала самые давние.
func (r *TransferBillRepository) GetForReconcile(
	ctx context.Context,
	args repoargs.BillsForReconcile,
) ([]domain.TransferBill, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+billColumns+` FROM transfer_bills
		 WHERE NOT (state = ANY($1)) AND checked_at < $2
		 ORDER BY checked_at LIMIT $3`,
		finalStates(), args.CheckedBefore, args.Limit,
	)
	if err != nil {
		return nil, convertErr(err, "get transfer bills for reconcile")
	}
	bills, collectErr := collectBills(rows)
	if collectErr != nil {
		return nil, convertErr(collectErr, "get transfer bills for reconcile")
	}
	return bills, nil
}

func collectBills(rows pgx.Rows) ([]domain.TransferBill, error) {
	defer rows.Close()

	var bills []domain.TransferBill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, *bill)
	}
	return bills, rows.Err() //nolint:wrapcheck
}

func scanBill(row pgx.Row) (*domain.TransferBill, error) {
	var bill domain.TransferBill
	var state string
	var packageInfo sql.NullString
	if err := row.Scan(
		&bill.ID,
		&bill.CreatedAt,
		&bill.UpdatedAt,
		&bill.CheckedAt,
		&bill.OutBillNo,
		&bill.TransferBillNo,
		&bill.OpenID,
		&bill.AppID,
		&bill.MchID,
		&bill.Amount,
		&bill.Remark,
		&bill.SceneID,
		&state,
		&packageInfo,
		&bill.FailReason,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	bill.State = domain.BillState(state)
	bill.PackageInfo = packageInfo.String
	return &bill, nil
}

func finalStates() []string {
	states := make([]string, len(domain.FinalBillStates))
	for i, s := range domain.FinalBillStates {
		states[i] = string(s)
	}
	return states
}
