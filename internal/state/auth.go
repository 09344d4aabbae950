package state

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type AuthStatus string

const (
	StatusSignedOut      AuthStatus = "SIGNED_OUT"
	StatusAuthenticating AuthStatus = "AUTHENTICATING"
	StatusSignedIn       AuthStatus = "SIGNED_IN"
)

// 認証セッション管理。
// SignedOut → Authenticating → SignedIn →（失効タイマーかLogout）→ SignedOut
// ペンディングの失効タイマーは常に最大1本（張り替え前に必ず止める）。
type AuthSlice struct {
	store    *Store
	identity repo.IdentityProvider
	sessions repo.SessionRepository
	clock    Clock
	sched    Scheduler

	status  AuthStatus
	session model.Session
	timer   TimerHandle
}

func newAuthSlice(store *Store, identity repo.IdentityProvider, sessions repo.SessionRepository, clock Clock, sched Scheduler) *AuthSlice {
	return &AuthSlice{
		store:    store,
		identity: identity,
		sessions: sessions,
		clock:    clock,
		sched:    sched,
		status:   StatusSignedOut,
	}
}

// ログインまたは新規登録。成功でセッションをメモリと端末ストレージに入れ、
// トークン寿命から絶対失効時刻を計算して失効タイマーを張る。
// 失敗なら状態は変えず、プロバイダのエラーメッセージ（APIError）をそのまま返す。
func (a *AuthSlice) Authenticate(ctx context.Context, email string, password string, mode repo.AuthMode) error {
	if err := validator.ValidateCredentials(email, password); err != nil {
		return err
	}

	a.store.mu.Lock()
	prev := a.status
	a.status = StatusAuthenticating
	a.store.mu.Unlock()

	res, err := a.identity.Authenticate(ctx, email, password, mode)

	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	if err != nil {
		a.status = prev
		return err
	}

	sess := model.Session{
		Token:     res.Token,
		UserID:    res.UserID,
		ExpiresAt: a.clock.Now().Add(res.ExpiresIn),
	}

	a.session = sess
	a.status = StatusSignedIn
	a.armTimerLocked(res.ExpiresIn)

	//保存に失敗してもメモリ上のセッションで続行（次回起動は再ログインになるだけ）
	_ = a.sessions.Save(ctx, sess)

	return nil
}

// 起動時の復元。保存が無い・tokenかuserIdが欠けている・期限切れ、の
// いずれかなら保存を消して要ログイン（false）。有効ならメモリに戻し、
// 残り時間で失効タイマーを張り直す。
func (a *AuthSlice) Restore(ctx context.Context) (bool, error) {
	stored, found, err := a.sessions.Load(ctx)
	if err != nil {
		return false, err
	}

	now := a.clock.Now()

	if !found || !stored.ValidAt(now) {
		_ = a.sessions.Clear(ctx)

		a.store.mu.Lock()
		a.session = model.Session{}
		a.status = StatusSignedOut
		a.store.mu.Unlock()

		return false, nil
	}

	a.store.mu.Lock()
	a.session = stored
	a.status = StatusSignedIn
	a.armTimerLocked(stored.ExpiresAt.Sub(now))
	a.store.mu.Unlock()

	return true, nil
}

// ログアウト。タイマーを止め、端末ストレージを消し、空セッションへ。
// 冪等（2回呼んでも同じ空状態）。
func (a *AuthSlice) Logout(ctx context.Context) {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	_ = a.sessions.Clear(ctx)

	a.session = model.Session{}
	a.status = StatusSignedOut
}

// 失効タイマーを張る。先にあるものは必ず止める（常に最大1本）。
func (a *AuthSlice) armTimerLocked(d time.Duration) {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = a.sched.AfterFunc(d, func() {
		a.Logout(context.Background())
	})
}

// セッションのコピー
func (a *AuthSlice) Session() model.Session {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return a.session
}

func (a *AuthSlice) Status() AuthStatus {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return a.status
}

func (a *AuthSlice) IsSignedIn() bool {
	return a.Status() == StatusSignedIn
}
