// Package devserver はリモートコラボレータ（ドキュメントストアと
// IDトークンサービス）のローカル代役。テストとローカル開発専用で、
// 本物と同じワイヤ形式（採番キーは {"name": "..."}、認証は
// ?auth=<token>、IDサービスのエラーは {"error":{"message":"..."}}）
// で応答する。
package devserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type userRecord struct {
	ID           string
	Email        string
	PasswordHash string
}

type Server struct {
	mu sync.Mutex

	secret   []byte
	tokenTTL time.Duration

	users    map[string]userRecord            // email → user
	products map[string]map[string]any        // productID → doc
	orders   map[string]map[string]map[string]any // userID → orderID → doc

	echo *echo.Echo
}

func New(secret string, tokenTTL time.Duration) *Server {
	s := &Server{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		users:    map[string]userRecord{},
		products: map[string]map[string]any{},
		orders:   map[string]map[string]map[string]any{},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	//IDトークンサービス（パスに「accounts:signUp」がそのまま来る）
	e.POST("/v1/:action", s.handleAuth)

	//ドキュメントストア
	e.GET("/products.json", s.listProducts)
	e.POST("/products.json", s.createProduct)
	e.PATCH("/products/:id", s.patchProduct)
	e.DELETE("/products/:id", s.deleteProduct)
	e.GET("/orders/:uid", s.listOrders)
	e.POST("/orders/:uid", s.createOrder)

	s.echo = e
	return s
}

// httptestに渡す用
func (s *Server) Handler() http.Handler {
	return s.echo
}

// 単体起動用（テスト埋め込み時はログを出さない）
func (s *Server) Start(addr string) error {
	s.echo.Use(middleware.Logger())
	return s.echo.Start(addr)
}

// ドキュメントストア側のエラー形式
type storeError struct {
	Error string `json:"error"`
}

func storeErrorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, storeError{Error: msg})
}
