package devserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GET /products.json（認証不要）
func (s *Server) listProducts(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//コピーして返す（ロック外でのシリアライズ対策よりも単純さ優先）
	out := make(map[string]map[string]any, len(s.products))
	for id, doc := range s.products {
		out[id] = doc
	}
	return c.JSON(http.StatusOK, out)
}

// POST /products.json?auth=<token>
func (s *Server) createProduct(c echo.Context) error {
	if _, err := s.verifyToken(c.QueryParam("auth")); err != nil {
		return storeErrorJSON(c, http.StatusUnauthorized, "Permission denied")
	}

	var doc map[string]any
	if err := c.Bind(&doc); err != nil {
		return storeErrorJSON(c, http.StatusBadRequest, "Invalid data")
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.products[id] = doc
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]string{"name": id})
}

// PATCH /products/{id}.json?auth=<token>（部分更新）
func (s *Server) patchProduct(c echo.Context) error {
	if _, err := s.verifyToken(c.QueryParam("auth")); err != nil {
		return storeErrorJSON(c, http.StatusUnauthorized, "Permission denied")
	}

	id := strings.TrimSuffix(c.Param("id"), ".json")

	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return storeErrorJSON(c, http.StatusBadRequest, "Invalid data")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.products[id]
	if !ok {
		return storeErrorJSON(c, http.StatusNotFound, "not found")
	}
	for k, v := range patch {
		doc[k] = v
	}

	return c.JSON(http.StatusOK, patch)
}

// DELETE /products/{id}.json?auth=<token>（無条件削除。無くても成功）
func (s *Server) deleteProduct(c echo.Context) error {
	if _, err := s.verifyToken(c.QueryParam("auth")); err != nil {
		return storeErrorJSON(c, http.StatusUnauthorized, "Permission denied")
	}

	id := strings.TrimSuffix(c.Param("id"), ".json")

	s.mu.Lock()
	delete(s.products, id)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, nil)
}

// GET /orders/{userId}.json（認証不要）
func (s *Server) listOrders(c echo.Context) error {
	uid := strings.TrimSuffix(c.Param("uid"), ".json")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]map[string]any, len(s.orders[uid]))
	for id, doc := range s.orders[uid] {
		out[id] = doc
	}
	return c.JSON(http.StatusOK, out)
}

// POST /orders/{userId}.json?auth=<token>
// 自分のコレクションにしか書けない（tokenのsubとuserIdを突き合わせる）。
func (s *Server) createOrder(c echo.Context) error {
	sub, err := s.verifyToken(c.QueryParam("auth"))
	if err != nil {
		return storeErrorJSON(c, http.StatusUnauthorized, "Permission denied")
	}

	uid := strings.TrimSuffix(c.Param("uid"), ".json")
	if uid != sub {
		return storeErrorJSON(c, http.StatusUnauthorized, "Permission denied")
	}

	var doc map[string]any
	if err := c.Bind(&doc); err != nil {
		return storeErrorJSON(c, http.StatusBadRequest, "Invalid data")
	}

	id := uuid.NewString()

	s.mu.Lock()
	if s.orders[uid] == nil {
		s.orders[uid] = map[string]map[string]any{}
	}
	s.orders[uid][id] = doc
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]string{"name": id})
}
