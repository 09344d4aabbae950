package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	StoreBaseURL string // リモートドキュメントストアのベースURL
	AuthBaseURL  string // IDトークンサービスのベースURL
	AuthAPIKey   string // IDトークンサービスのAPIキー

	SessionDBPath string // ローカルセッションDB（sqlite）のパス
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		StoreBaseURL: os.Getenv("STORE_BASE_URL"),
		AuthBaseURL:  os.Getenv("AUTH_BASE_URL"),
		AuthAPIKey:   os.Getenv("AUTH_API_KEY"),

		SessionDBPath: os.Getenv("SESSION_DB_PATH"),
	}

	//必須チェック
	if cfg.StoreBaseURL == "" {
		return Config{}, fmt.Errorf("STORE_BASE_URL is required")
	}
	if cfg.AuthBaseURL == "" {
		return Config{}, fmt.Errorf("AUTH_BASE_URL is required")
	}
	if cfg.AuthAPIKey == "" {
		return Config{}, fmt.Errorf("AUTH_API_KEY is required")
	}
	if cfg.SessionDBPath == "" {
		return Config{}, fmt.Errorf("SESSION_DB_PATH is required")
	}

	return cfg, nil
}
