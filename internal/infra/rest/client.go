package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	repo "app/internal/repository"
)

// リモートドキュメントストア/IDサービス共通のHTTPクライアント。
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

// doはJSONを送ってJSONを受ける。outがnilなら本文は読み捨てる。
// 非2xxは本文からメッセージを拾ってAPIErrorにする。
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, in any, out any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	u := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return repo.NewAPIError(res.StatusCode, readErrorMessage(res.Body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// token付きクエリ（tokenが空なら付けない）
func authQuery(token string) url.Values {
	q := url.Values{}
	if token != "" {
		q.Set("auth", token)
	}
	return q
}

// エラー本文からプロバイダのメッセージを拾う。
// {"error":"..."} と {"error":{"message":"..."}} の両方の形に対応。
func readErrorMessage(r io.Reader) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Error) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(body.Error, &plain); err == nil {
		return plain
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
