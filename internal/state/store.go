package state

import (
	"sync"

	repo "app/internal/repository"
)

// Depsは各スライスが使う外部コラボレータ
type Deps struct {
	Products repo.ProductRepository
	Orders   repo.OrderRepository
	Identity repo.IdentityProvider
	Sessions repo.SessionRepository

	Clock     Clock     // nilならシステム時計
	Scheduler Scheduler // nilならtime.AfterFunc
}

// Storeは4スライスをまとめたアプリ状態の唯一の置き場。
// 各スライスは自分の部分木だけを書き、他スライスへの影響は
// イベント購読で表す（境界をまたいだ直接書き換えはしない）。
// 変更は全てmuの下で行う。
type Store struct {
	mu sync.Mutex

	Auth     *AuthSlice
	Products *ProductsSlice
	Cart     *CartSlice
	Orders   *OrdersSlice

	subscribers []func(Event)
}

// DI
func New(deps Deps) *Store {
	if deps.Clock == nil {
		deps.Clock = NewSystemClock()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = NewSystemScheduler()
	}

	s := &Store{}
	s.Auth = newAuthSlice(s, deps.Identity, deps.Sessions, deps.Clock, deps.Scheduler)
	s.Products = newProductsSlice(s, deps.Products)
	s.Cart = newCartSlice(s)
	s.Orders = newOrdersSlice(s, deps.Orders, deps.Clock)

	//スライス間の反応はここで購読を張る
	s.subscribe(s.Cart.handleEvent)

	return s
}

func (s *Store) subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// muを持ったまま同期配信する。購読側はロック済み前提で動く。
func (s *Store) emitLocked(ev Event) {
	for _, fn := range s.subscribers {
		fn(ev)
	}
}
