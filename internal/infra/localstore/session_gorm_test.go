package localstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (context.Context, repo.SessionRepository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	r, err := NewSessionRepository(path)
	require.NoError(t, err)
	return context.Background(), r
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx, r := newTestRepository(t)

	//初期状態は未保存
	_, found, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	sess := model.Session{
		Token:     "tok-1",
		UserID:    "user-1",
		ExpiresAt: time.Date(2026, 1, 15, 13, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Save(ctx, sess))

	got, found, err := r.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))
}

// 保存は常に1件（上書き）
func TestSessionRepository_SaveOverwrites(t *testing.T) {
	ctx, r := newTestRepository(t)

	first := model.Session{Token: "tok-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, r.Save(ctx, first))

	second := model.Session{Token: "tok-2", UserID: "user-2", ExpiresAt: time.Now().Add(2 * time.Hour)}
	require.NoError(t, r.Save(ctx, second))

	got, found, err := r.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok-2", got.Token)
	assert.Equal(t, "user-2", got.UserID)
}

func TestSessionRepository_ClearIsIdempotent(t *testing.T) {
	ctx, r := newTestRepository(t)

	//無い状態でも成功
	require.NoError(t, r.Clear(ctx))

	sess := model.Session{Token: "tok-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, r.Save(ctx, sess))

	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	_, found, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
