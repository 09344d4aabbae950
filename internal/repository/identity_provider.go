package repository

import (
	"context"
	"time"
)

// 認証モード（新規作成か既存アカウントか）
type AuthMode string

const (
	AuthModeSignUp AuthMode = "signUp"
	AuthModeSignIn AuthMode = "signInWithPassword"
)

// 認証成功時にプロバイダが返すもの。ExpiresInはトークン寿命。
type AuthResult struct {
	Token     string
	UserID    string
	ExpiresIn time.Duration
}

// IDトークン発行サービスとの約束。
// 失敗はAPIError（プロバイダのエラーメッセージ入り）で返す。
type IdentityProvider interface {
	Authenticate(ctx context.Context, email string, password string, mode AuthMode) (AuthResult, error)
}
