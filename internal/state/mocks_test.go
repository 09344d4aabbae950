package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FetchAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, token string, p model.Product) (model.Product, error) {
	args := m.Called(ctx, token, p)
	cp, _ := args.Get(0).(model.Product)
	return cp, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, token string, p model.Product) error {
	args := m.Called(ctx, token, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, token string, productID string) error {
	args := m.Called(ctx, token, productID)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, token string, userID string, o model.Order) (string, error) {
	args := m.Called(ctx, token, userID, o)
	return args.String(0), args.Error(1)
}

// =====================
// Mock: IdentityProvider
// =====================

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, email string, password string, mode repo.AuthMode) (repo.AuthResult, error) {
	args := m.Called(ctx, email, password, mode)
	res, _ := args.Get(0).(repo.AuthResult)
	return res, args.Error(1)
}

// =====================
// Mock: SessionRepository
// =====================

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Load(ctx context.Context) (model.Session, bool, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.Session)
	return s, args.Bool(1), args.Error(2)
}

func (m *MockSessionRepository) Save(ctx context.Context, s model.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// =====================
// テスト用の時計とスケジューラ
// =====================

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) TimerHandle {
	t := &fakeTimer{d: d, f: f}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

// 最後に張られたタイマーを発火（止められていれば何もしない）
func (s *fakeScheduler) fireLast() {
	s.mu.Lock()
	var t *fakeTimer
	if len(s.timers) > 0 {
		t = s.timers[len(s.timers)-1]
	}
	s.mu.Unlock()

	if t == nil || t.stopped || t.fired {
		return
	}
	t.fired = true
	t.f()
}

// ペンディング中のタイマー本数
func (s *fakeScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// =====================
// Helper
// =====================

type testEnv struct {
	store    *Store
	products *MockProductRepository
	orders   *MockOrderRepository
	identity *MockIdentityProvider
	sessions *MockSessionRepository
	clock    *fakeClock
	sched    *fakeScheduler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		products: new(MockProductRepository),
		orders:   new(MockOrderRepository),
		identity: new(MockIdentityProvider),
		sessions: new(MockSessionRepository),
		clock:    newFakeClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)),
		sched:    &fakeScheduler{},
	}

	env.store = New(Deps{
		Products:  env.products,
		Orders:    env.orders,
		Identity:  env.identity,
		Sessions:  env.sessions,
		Clock:     env.clock,
		Scheduler: env.sched,
	})

	return env
}

// ログイン済みの状態を作る（token/userIdは固定値）
func signIn(t *testing.T, env *testEnv) {
	t.Helper()

	env.identity.On("Authenticate", mock.Anything, "user@example.com", "secret123", repo.AuthModeSignIn).
		Return(repo.AuthResult{Token: "tok-1", UserID: "user-1", ExpiresIn: time.Hour}, nil).Once()
	env.sessions.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	err := env.store.Auth.Authenticate(context.Background(), "user@example.com", "secret123", repo.AuthModeSignIn)
	require.NoError(t, err)
}
