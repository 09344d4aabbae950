package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文のリモート永続化。注文はユーザー単位のコレクションに入る。
type OrderRepository interface {
	// ストアの列挙順のまま返す（時系列の保証はしない）
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)

	// 採番されたキーを返す
	Create(ctx context.Context, token string, userID string, o model.Order) (string, error)
}
