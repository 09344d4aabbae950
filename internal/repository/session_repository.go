package repository

import (
	"app/internal/domain/model"
	"context"
)

// 端末ローカルのセッション永続化。保存するのは1件だけ。
type SessionRepository interface {
	// 保存が無ければ found=false（エラーにしない）
	Load(ctx context.Context) (s model.Session, found bool, err error)

	// 上書き保存（常に1件）
	Save(ctx context.Context, s model.Session) error

	// 冪等。無くても成功
	Clear(ctx context.Context) error
}
