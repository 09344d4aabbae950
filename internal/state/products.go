package state

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

// 未ログインで書き込み操作を呼んだ
var ErrNotSignedIn = errors.New("not signed in")

type CreateProductInput struct {
	Title       string
	ImageURL    string
	Description string
	Price       float64
}

// 価格は受け取らない（作成後は変更不可）
type UpdateProductInput struct {
	ID          string
	Title       string
	ImageURL    string
	Description string
}

// 商品カタログ。全件と自分の出品の2リストを持つ。
type ProductsSlice struct {
	store       *Store
	productRepo repo.ProductRepository

	all   []model.Product
	owned []model.Product
}

func newProductsSlice(store *Store, productRepo repo.ProductRepository) *ProductsSlice {
	return &ProductsSlice{store: store, productRepo: productRepo}
}

// 全件取得して、ownerIdで全件/自分の2リストに分けて丸ごと置き換える。
// 取得や解釈に失敗したら状態は一切触らない（呼び出し側がエラーを出す）。
func (p *ProductsSlice) FetchAll(ctx context.Context) error {
	p.store.mu.Lock()
	userID := p.store.Auth.session.UserID
	p.store.mu.Unlock()

	products, err := p.productRepo.FetchAll(ctx)
	if err != nil {
		return err
	}

	owned := make([]model.Product, 0)
	for _, prod := range products {
		if prod.OwnerID == userID {
			owned = append(owned, prod)
		}
	}

	p.store.mu.Lock()
	p.all = products
	p.owned = owned
	p.store.mu.Unlock()

	return nil
}

// 新規出品。IDはストアが採番。成功で両リストに追記。
func (p *ProductsSlice) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if err := validator.ValidateProductCreate(in.Title, in.ImageURL, in.Price); err != nil {
		return model.Product{}, err
	}

	p.store.mu.Lock()
	sess := p.store.Auth.session
	p.store.mu.Unlock()

	if sess.Token == "" {
		return model.Product{}, ErrNotSignedIn
	}

	created, err := p.productRepo.Create(ctx, sess.Token, model.Product{
		OwnerID:     sess.UserID,
		Title:       strings.TrimSpace(in.Title),
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		return model.Product{}, err
	}

	p.store.mu.Lock()
	p.all = append(p.all, created)
	p.owned = append(p.owned, created)
	p.store.mu.Unlock()

	return created, nil
}

// 編集。PriceとOwnerIDは既存レコードから必ず引き継ぐ。
// 自分の出品に無ければ repo.ErrNotFound（どちらのリストも触らない）。
// 成功で両リストの該当要素をその場で置き換える（並び順は保つ）。
func (p *ProductsSlice) Update(ctx context.Context, in UpdateProductInput) error {
	if err := validator.ValidateProductUpdate(in.ID, in.Title, in.ImageURL); err != nil {
		return err
	}

	p.store.mu.Lock()
	sess := p.store.Auth.session

	var updated model.Product
	found := false
	for _, prod := range p.owned {
		if prod.ID == in.ID {
			updated = model.Product{
				ID:          prod.ID,
				OwnerID:     prod.OwnerID,
				Title:       strings.TrimSpace(in.Title),
				ImageURL:    in.ImageURL,
				Description: in.Description,
				Price:       prod.Price,
			}
			found = true
			break
		}
	}
	p.store.mu.Unlock()

	if sess.Token == "" {
		return ErrNotSignedIn
	}
	if !found {
		return repo.ErrNotFound
	}

	if err := p.productRepo.Update(ctx, sess.Token, updated); err != nil {
		return err
	}

	p.store.mu.Lock()
	replaceByID(p.all, updated)
	replaceByID(p.owned, updated)
	p.store.mu.Unlock()

	return nil
}

// 削除。成功で両リストから外し、ProductDeletedを発火（カートが反応する）。
func (p *ProductsSlice) Delete(ctx context.Context, productID string) error {
	p.store.mu.Lock()
	sess := p.store.Auth.session
	p.store.mu.Unlock()

	if sess.Token == "" {
		return ErrNotSignedIn
	}

	if err := p.productRepo.Delete(ctx, sess.Token, productID); err != nil {
		return err
	}

	p.store.mu.Lock()
	p.all = removeByID(p.all, productID)
	p.owned = removeByID(p.owned, productID)
	p.store.emitLocked(ProductDeleted{ProductID: productID})
	p.store.mu.Unlock()

	return nil
}

// カタログ全件のコピー
func (p *ProductsSlice) All() []model.Product {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	return append([]model.Product(nil), p.all...)
}

// 自分の出品のコピー
func (p *ProductsSlice) Owned() []model.Product {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	return append([]model.Product(nil), p.owned...)
}

// 同じIDの要素をその場で置き換える（無ければ何もしない）
func replaceByID(list []model.Product, p model.Product) {
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return
		}
	}
}

func removeByID(list []model.Product, id string) []model.Product {
	out := make([]model.Product, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
