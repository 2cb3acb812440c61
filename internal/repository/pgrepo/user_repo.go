package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
	"github.com/fsdevblog/wepay-checkin/pkg/uow"
)

const userColumns = "id, created_at, updated_at, wx_open_id, username, balance"

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// Ensure создаёт юзера openID с нулевым балансом, если его ещё нет.
func (r *UserRepository) Ensure(ctx context.Context, openID string) error {
	_, err := r.conn.Exec(ctx,
		`INSERT INTO users (wx_open_id, username) VALUES ($1, $1) ON CONFLICT (wx_open_id) DO NOTHING`,
		openID,
	)
	return convertErr(err, "ensure user %s", openID)
}

// AddBalance увеличивает баланс openID на amount. Отсутствующий юзер создаётся.
func (r *UserRepository) AddBalance(ctx context.Context, openID string, amount int64) (*domain.User, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO users (wx_open_id, username, balance) VALUES ($1, $1, $2)
		 ON CONFLICT (wx_open_id) DO UPDATE SET balance = users.balance + EXCLUDED.balance, updated_at = NOW()
		 RETURNING `+userColumns,
		openID, amount,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "add balance for %s", openID)
	}
	return user, nil
}

func (r *UserRepository) FindByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE wx_open_id = $1`, openID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "find user %s", openID)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.OpenID,
		&user.Username,
		&user.Balance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
