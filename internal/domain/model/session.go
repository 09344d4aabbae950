package model

import "time"

// 認証セッション。TokenとUserIDは必ず両方入るか両方空。
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// セッションが入っているか（空セッション判定）
func (s Session) IsZero() bool {
	return s.Token == "" && s.UserID == ""
}

// nowの時点で有効か
func (s Session) ValidAt(now time.Time) bool {
	if s.Token == "" || s.UserID == "" {
		return false
	}
	return s.ExpiresAt.After(now)
}
