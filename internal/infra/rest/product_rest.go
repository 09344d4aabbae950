package rest

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 商品ドキュメントのワイヤ形式（キーは別持ちなのでIDは含まない）
type productDoc struct {
	OwnerID     string  `json:"ownerId"`
	Title       string  `json:"title"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type productRestRepository struct {
	client *Client
}

// REST実装
func NewProductRepository(client *Client) repo.ProductRepository {
	return &productRestRepository{client: client}
}

// 全件取得。空コレクションはnullで返るのでそのまま空リストにする。
func (r *productRestRepository) FetchAll(ctx context.Context) ([]model.Product, error) {
	var docs map[string]productDoc
	if err := r.client.do(ctx, http.MethodGet, "products.json", nil, nil, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for id, d := range docs {
		products = append(products, model.Product{
			ID:          id,
			OwnerID:     d.OwnerID,
			Title:       d.Title,
			ImageURL:    d.ImageURL,
			Description: d.Description,
			Price:       d.Price,
		})
	}

	//マップ列挙は順不同なのでキー順に揃える
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

// 新規作成。ストアが採番したキーをIDに入れて返す。
func (r *productRestRepository) Create(ctx context.Context, token string, p model.Product) (model.Product, error) {
	in := productDoc{
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Price:       p.Price,
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := r.client.do(ctx, http.MethodPost, "products.json", authQuery(token), in, &out); err != nil {
		return model.Product{}, err
	}
	if out.Name == "" {
		return model.Product{}, fmt.Errorf("store did not assign a key")
	}

	p.ID = out.Name
	return p, nil
}

// 部分更新。PriceとOwnerIDは送らない（作成後は変更不可）。
func (r *productRestRepository) Update(ctx context.Context, token string, p model.Product) error {
	in := map[string]any{
		"title":       p.Title,
		"imageUrl":    p.ImageURL,
		"description": p.Description,
	}
	return r.client.do(ctx, http.MethodPatch, "products/"+p.ID+".json", authQuery(token), in, nil)
}

func (r *productRestRepository) Delete(ctx context.Context, token string, productID string) error {
	return r.client.do(ctx, http.MethodDelete, "products/"+productID+".json", authQuery(token), nil, nil)
}
