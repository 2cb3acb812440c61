package checkin

import (
	"errors"
	"fmt"
)

var (
	ErrSignInInProgress = errors.New("sign-in already in progress")
	ErrNothingToConfirm = errors.New("no transfer to confirm")
)

// StatusError бэкенд ответил не 2xx статусом.
type StatusError struct {
	StatusCode int
	Msg        string
}

func NewStatusError(statusCode int, msg string) *StatusError {
	return &StatusError{StatusCode: statusCode, Msg: msg}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Msg)
}
