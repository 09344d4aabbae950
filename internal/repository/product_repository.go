package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品のリモート永続化（読み書き）だけを約束。
// 書き込みはtoken必須。IDはストア側が採番する。
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]model.Product, error)

	// 採番されたIDを入れた商品を返す
	Create(ctx context.Context, token string, p model.Product) (model.Product, error)

	// Title/ImageURL/Descriptionのみの部分更新（Price/OwnerIDは送らない）
	Update(ctx context.Context, token string, p model.Product) error

	Delete(ctx context.Context, token string, productID string) error
}
