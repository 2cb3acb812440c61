package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/wepay-checkin/internal/domain"
)

const (
	uniqueViolationCode = "23505"
)

// convertErr приводит ошибку к виду слоя репозитория: сообщение контекста, тип бизнес-ошибки и оригинальный текст.
// Особенности:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound;
//   - нарушение уникальности превращается в domain.ErrDuplicateKey;
//   - остальное возвращается как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) && isUniqueViolationErr(pgErr) {
		errType = domain.ErrDuplicateKey
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}
