package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 注文確定で採番IDつきの注文が末尾に付き、カートが空になる
func TestOrders_Submit_AppendsOrderAndClearsCart(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signIn(t, env)

	cart := env.store.Cart
	cart.AddToCart(product("p1", 9.99))
	cart.AddToCart(product("p1", 9.99))
	cart.AddToCart(product("p2", 5))

	items := cart.Items()
	total := cart.TotalAmount()
	submittedAt := env.clock.Now()

	env.orders.On("Create", mock.Anything, "tok-1", "user-1", mock.MatchedBy(func(o model.Order) bool {
		return len(o.Items) == 2 && o.SubmittedAt.Equal(submittedAt)
	})).Return("order-1", nil).Once()

	order, err := env.store.Orders.Submit(ctx, items, total)
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.InDelta(t, total, order.TotalAmount, 1e-9)
	assert.Equal(t, submittedAt, order.SubmittedAt)

	//注文リストに追記され、カートは空へ
	require.Len(t, env.store.Orders.All(), 1)
	assert.Empty(t, cart.Items())
	assert.InDelta(t, 0, cart.TotalAmount(), 1e-9)
}

// 空カートの注文は契約違反（リモートは呼ばない）
func TestOrders_Submit_EmptyCartIsContractViolation(t *testing.T) {
	env := newTestEnv()

	signIn(t, env)

	_, err := env.store.Orders.Submit(context.Background(), nil, 0)
	assert.ErrorIs(t, err, ErrEmptyOrder)
	env.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 送信失敗なら注文は付かず、カートもそのまま
func TestOrders_Submit_FailureKeepsCartAndList(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signIn(t, env)

	cart := env.store.Cart
	cart.AddToCart(product("p1", 9.99))

	env.orders.On("Create", mock.Anything, "tok-1", "user-1", mock.Anything).
		Return("", errors.New("network down")).Once()

	_, err := env.store.Orders.Submit(ctx, cart.Items(), cart.TotalAmount())
	require.Error(t, err)

	assert.Empty(t, env.store.Orders.All())
	assert.Len(t, cart.Items(), 1)
	assert.InDelta(t, 9.99, cart.TotalAmount(), 1e-9)
}

// 確定済み注文はスナップショット（以後のカート操作の影響を受けない）
func TestOrders_Submit_SnapshotIsFrozen(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signIn(t, env)

	cart := env.store.Cart
	cart.AddToCart(product("p1", 9.99))

	env.orders.On("Create", mock.Anything, "tok-1", "user-1", mock.Anything).
		Return("order-1", nil).Once()

	_, err := env.store.Orders.Submit(ctx, cart.Items(), cart.TotalAmount())
	require.NoError(t, err)

	//新しいカート操作は確定済み注文に影響しない
	cart.AddToCart(product("p2", 100))

	orders := env.store.Orders.All()
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "p1", orders[0].Items[0].ProductID)
	assert.InDelta(t, 9.99, orders[0].TotalAmount, 1e-9)
}

// 取得は丸ごと置き換え。新規確定は取得順に関係なく末尾に付く。
func TestOrders_FetchAll_ReplacesAndSubmitAppends(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signIn(t, env)

	fetched := []model.Order{
		{ID: "o1", TotalAmount: 10, SubmittedAt: env.clock.Now().Add(-time.Hour)},
		{ID: "o2", TotalAmount: 20, SubmittedAt: env.clock.Now().Add(-2 * time.Hour)},
	}
	env.orders.On("ListByUserID", mock.Anything, "user-1").Return(fetched, nil).Once()
	require.NoError(t, env.store.Orders.FetchAll(ctx))
	require.Len(t, env.store.Orders.All(), 2)

	env.store.Cart.AddToCart(product("p1", 9.99))
	env.orders.On("Create", mock.Anything, "tok-1", "user-1", mock.Anything).
		Return("o3", nil).Once()

	_, err := env.store.Orders.Submit(ctx, env.store.Cart.Items(), env.store.Cart.TotalAmount())
	require.NoError(t, err)

	orders := env.store.Orders.All()
	require.Len(t, orders, 3)
	//時刻に関係なく末尾（並び替えはしない）
	assert.Equal(t, "o3", orders[2].ID)
}

// 未ログインでは注文一覧を取れない
func TestOrders_FetchAll_RequiresSession(t *testing.T) {
	env := newTestEnv()

	err := env.store.Orders.FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	env.orders.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
}
