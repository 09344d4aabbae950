package localstore

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 保存レコードは常に1件（固定キー）
const sessionRecordID int64 = 1

type sessionRecord struct {
	ID         int64     `gorm:"primaryKey"`
	Token      string    `gorm:"not null"`
	UserID     string    `gorm:"not null"`
	ExpiryDate time.Time `gorm:"not null"`
}

func (sessionRecord) TableName() string {
	return "session"
}

type sessionGormRepository struct {
	db *gorm.DB //DB接続（GORM）
}

// GORM実装（端末ローカルのsqlite）
func NewSessionRepository(path string) (repo.SessionRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, err
	}

	return &sessionGormRepository{db: db}, nil
}

// 保存が無ければ found=false（エラーにしない）
func (r *sessionGormRepository) Load(ctx context.Context) (model.Session, bool, error) {
	var rec sessionRecord

	err := r.db.WithContext(ctx).First(&rec, sessionRecordID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Session{}, false, nil
		}
		return model.Session{}, false, err
	}

	return model.Session{
		Token:     rec.Token,
		UserID:    rec.UserID,
		ExpiresAt: rec.ExpiryDate,
	}, true, nil
}

// 上書き保存（常に1件）
func (r *sessionGormRepository) Save(ctx context.Context, s model.Session) error {
	rec := sessionRecord{
		ID:         sessionRecordID,
		Token:      s.Token,
		UserID:     s.UserID,
		ExpiryDate: s.ExpiresAt,
	}
	return r.db.WithContext(ctx).Save(&rec).Error
}

// 冪等。無くても成功
func (r *sessionGormRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&sessionRecord{}, sessionRecordID).Error
}
