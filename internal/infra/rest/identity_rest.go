package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	repo "app/internal/repository"
)

type identityRestProvider struct {
	client *Client
	apiKey string
}

// REST実装（IDトークンサービス）
func NewIdentityProvider(client *Client, apiKey string) repo.IdentityProvider {
	return &identityRestProvider{client: client, apiKey: apiKey}
}

// 新規作成/照合のどちらもエンドポイント名だけが違う。
// 失敗はAPIError（EMAIL_NOT_FOUNDなどのメッセージ入り）。
func (p *identityRestProvider) Authenticate(ctx context.Context, email string, password string, mode repo.AuthMode) (repo.AuthResult, error) {
	q := url.Values{}
	q.Set("key", p.apiKey)

	in := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var out struct {
		IDToken   string `json:"idToken"`
		LocalID   string `json:"localId"`
		ExpiresIn string `json:"expiresIn"` //秒（文字列で返る）
	}
	if err := p.client.do(ctx, http.MethodPost, "v1/accounts:"+string(mode), q, in, &out); err != nil {
		return repo.AuthResult{}, err
	}

	secs, err := strconv.Atoi(out.ExpiresIn)
	if err != nil || out.IDToken == "" || out.LocalID == "" {
		return repo.AuthResult{}, fmt.Errorf("malformed auth response")
	}

	return repo.AuthResult{
		Token:     out.IDToken,
		UserID:    out.LocalID,
		ExpiresIn: time.Duration(secs) * time.Second,
	}, nil
}
