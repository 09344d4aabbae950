package state

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 空カートで注文した（UI側で禁止しておく契約）
var ErrEmptyOrder = errors.New("empty order")

// 注文履歴。取得順のまま持ち、並び替えはしない。
type OrdersSlice struct {
	store     *Store
	orderRepo repo.OrderRepository
	clock     Clock

	orders []model.Order
}

func newOrdersSlice(store *Store, orderRepo repo.OrderRepository, clock Clock) *OrdersSlice {
	return &OrdersSlice{store: store, orderRepo: orderRepo, clock: clock}
}

// 自分の注文を全件取得して丸ごと置き換える。
// 並びはストアの列挙順のまま（時系列との一致は保証しない）。
func (o *OrdersSlice) FetchAll(ctx context.Context) error {
	o.store.mu.Lock()
	sess := o.store.Auth.session
	o.store.mu.Unlock()

	if sess.UserID == "" {
		return ErrNotSignedIn
	}

	orders, err := o.orderRepo.ListByUserID(ctx, sess.UserID)
	if err != nil {
		return err
	}

	o.store.mu.Lock()
	o.orders = orders
	o.store.mu.Unlock()

	return nil
}

// 注文確定。明細スナップショットに時刻を打って送り、採番IDつきの注文を
// 末尾に追記する（既存の並びには挿し込まない）。成功時だけ
// OrderSubmittedを発火し、カートはそれを受けて空になる。
// 失敗時は追記もイベントも無し。
func (o *OrdersSlice) Submit(ctx context.Context, items []model.CartItem, totalAmount float64) (model.Order, error) {
	if len(items) == 0 {
		return model.Order{}, ErrEmptyOrder
	}

	o.store.mu.Lock()
	sess := o.store.Auth.session
	o.store.mu.Unlock()

	if sess.Token == "" {
		return model.Order{}, ErrNotSignedIn
	}

	//確定時点のコピー（以後のカートや商品の変更の影響を受けない）
	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)

	order := model.Order{
		Items:       snapshot,
		TotalAmount: totalAmount,
		SubmittedAt: o.clock.Now(),
	}

	id, err := o.orderRepo.Create(ctx, sess.Token, sess.UserID, order)
	if err != nil {
		return model.Order{}, err
	}
	order.ID = id

	o.store.mu.Lock()
	o.orders = append(o.orders, order)
	o.store.emitLocked(OrderSubmitted{OrderID: id})
	o.store.mu.Unlock()

	return order, nil
}

// 注文リストのコピー
func (o *OrdersSlice) All() []model.Order {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()
	return append([]model.Order(nil), o.orders...)
}
