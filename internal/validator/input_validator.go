package validator

import (
	"errors"
	"regexp"
	"strings"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

// 認証の入力を検証
func ValidateCredentials(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	// パスワード最低文字数（プロバイダ仕様: 6）
	if len(password) < 6 {
		return ErrInvalidInput
	}

	return nil
}

// 出品の入力を検証
func ValidateProductCreate(title string, imageURL string, price float64) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(imageURL) == "" {
		return ErrInvalidInput
	}
	if price < 0 {
		return ErrInvalidInput
	}
	return nil
}

// 編集の入力を検証（価格は受け取らない）
func ValidateProductUpdate(id string, title string, imageURL string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(imageURL) == "" {
		return ErrInvalidInput
	}
	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
