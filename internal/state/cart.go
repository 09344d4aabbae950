package state

import (
	"errors"
	"sort"

	"app/internal/domain/model"
)

// カートに無い商品を減らそうとした（呼び出し側の契約違反）
var ErrItemNotInCart = errors.New("item not in cart")

// カート状態。明細はProductIDキー。合計は明細から常に導出できるが、
// O(1)で読めるよう増分で持つ（明細と別に永続化はしない）。
type CartSlice struct {
	store *Store

	items map[string]model.CartItem
	total float64
}

func newCartSlice(store *Store) *CartSlice {
	return &CartSlice{
		store: store,
		items: map[string]model.CartItem{},
	}
}

// 追加（同一商品は数量+1）。単価とタイトルは追加時点のスナップショット。
// ローカル状態しか触らないので失敗しない。
func (c *CartSlice) AddToCart(p model.Product) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if it, ok := c.items[p.ID]; ok {
		it.Quantity++
		c.items[p.ID] = it
	} else {
		c.items[p.ID] = model.CartItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Quantity:  1,
		}
	}

	c.total += p.Price
}

// 1つ減らす。数量1なら明細ごと削除（数量0の明細は残さない）。
func (c *CartSlice) RemoveFromCart(productID string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	it, ok := c.items[productID]
	if !ok {
		return ErrItemNotInCart
	}

	c.total -= it.Price

	if it.Quantity == 1 {
		delete(c.items, productID)
	} else {
		it.Quantity--
		c.items[productID] = it
	}

	return nil
}

// 明細のコピーをProductID順で返す
func (c *CartSlice) Items() []model.CartItem {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items := make([]model.CartItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})
	return items
}

func (c *CartSlice) TotalAmount() float64 {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.total
}

// 表示用の合計。浮動小数の端数で負に見えないよう0でクランプする。
func (c *CartSlice) DisplayTotal() float64 {
	t := c.TotalAmount()
	if t < 0 {
		return 0
	}
	return t
}

// 他スライスの完了イベントへの反応（ロック済みで呼ばれる）
func (c *CartSlice) handleEvent(ev Event) {
	switch ev := ev.(type) {
	case OrderSubmitted:
		//注文が通ったらカートは無条件で空へ
		c.items = map[string]model.CartItem{}
		c.total = 0

	case ProductDeleted:
		//カートに入ったまま商品が消えた場合の掃除
		if it, ok := c.items[ev.ProductID]; ok {
			c.total -= it.Price * float64(it.Quantity)
			delete(c.items, ev.ProductID)
		}
	}
}
