package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// リモートが拒否した（非成功ステータス）。Messageはプロバイダの
// 機械可読メッセージ（EMAIL_NOT_FOUNDなど）をそのまま入れる。
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func NewAPIError(statusCode int, message string) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}
