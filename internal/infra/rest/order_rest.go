package rest

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文ドキュメントのワイヤ形式
type orderDoc struct {
	CartItems   []cartItemDoc `json:"cartItems"`
	TotalAmount float64       `json:"totalAmount"`
	Date        string        `json:"date"` // RFC3339
}

type cartItemDoc struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type orderRestRepository struct {
	client *Client
}

// REST実装
func NewOrderRepository(client *Client) repo.OrderRepository {
	return &orderRestRepository{client: client}
}

// ユーザー単位のコレクションを全件取得。日時が読めない注文が1件でも
// あれば操作ごと失敗にする（壊れた応答で部分的に置き換えない）。
func (r *orderRestRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var docs map[string]orderDoc
	if err := r.client.do(ctx, http.MethodGet, "orders/"+userID+".json", nil, nil, &docs); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for id, d := range docs {
		submittedAt, err := time.Parse(time.RFC3339, d.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed order date %q: %w", d.Date, err)
		}

		items := make([]model.CartItem, 0, len(d.CartItems))
		for _, it := range d.CartItems {
			items = append(items, model.CartItem{
				ProductID: it.ProductID,
				Title:     it.Title,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
		}

		orders = append(orders, model.Order{
			ID:          id,
			Items:       items,
			TotalAmount: d.TotalAmount,
			SubmittedAt: submittedAt,
		})
	}

	//ストアのキー順＝列挙順として返す（時系列の保証はしない）
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID < orders[j].ID
	})

	return orders, nil
}

// 新規作成。ストアが採番したキーを返す。
func (r *orderRestRepository) Create(ctx context.Context, token string, userID string, o model.Order) (string, error) {
	items := make([]cartItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, cartItemDoc{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	in := orderDoc{
		CartItems:   items,
		TotalAmount: o.TotalAmount,
		Date:        o.SubmittedAt.Format(time.RFC3339),
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := r.client.do(ctx, http.MethodPost, "orders/"+userID+".json", authQuery(token), in, &out); err != nil {
		return "", err
	}
	if out.Name == "" {
		return "", fmt.Errorf("store did not assign a key")
	}

	return out.Name, nil
}
