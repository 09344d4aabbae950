package devserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// IDサービス側のエラー形式
type identityError struct {
	Error identityErrorBody `json:"error"`
}

type identityErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func identityErrorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, identityError{
		Error: identityErrorBody{Code: status, Message: msg},
	})
}

type authRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	IDToken   string `json:"idToken"`
	LocalID   string `json:"localId"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"` //秒（文字列）
}

// POST /v1/accounts:signUp | /v1/accounts:signInWithPassword
func (s *Server) handleAuth(c echo.Context) error {
	action := c.Param("action")
	mode, ok := strings.CutPrefix(action, "accounts:")
	if !ok {
		return identityErrorJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	var req authRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return identityErrorJSON(c, http.StatusBadRequest, "INVALID_REQUEST")
	}

	switch mode {
	case "signUp":
		return s.signUp(c, req)
	case "signInWithPassword":
		return s.signIn(c, req)
	default:
		return identityErrorJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
}

func (s *Server) signUp(c echo.Context, req authRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Email]; exists {
		return identityErrorJSON(c, http.StatusBadRequest, "EMAIL_EXISTS")
	}
	if len(req.Password) < 6 {
		return identityErrorJSON(c, http.StatusBadRequest, "WEAK_PASSWORD")
	}

	//パスワードは必ずハッシュ化して保存
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return identityErrorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR")
	}

	user := userRecord{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	s.users[req.Email] = user

	return s.tokenResponse(c, user)
}

func (s *Server) signIn(c echo.Context, req authRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[req.Email]
	if !exists {
		return identityErrorJSON(c, http.StatusBadRequest, "EMAIL_NOT_FOUND")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return identityErrorJSON(c, http.StatusBadRequest, "INVALID_PASSWORD")
	}

	return s.tokenResponse(c, user)
}

func (s *Server) tokenResponse(c echo.Context, user userRecord) error {
	token, err := s.issueToken(user.ID)
	if err != nil {
		return identityErrorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR")
	}

	return c.JSON(http.StatusOK, authResponse{
		IDToken:   token,
		LocalID:   user.ID,
		Email:     user.Email,
		ExpiresIn: strconv.Itoa(int(s.tokenTTL.Seconds())),
	})
}

// jwt発行
func (s *Server) issueToken(userID string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// tokenを検証してsub（userID）を返す
func (s *Server) verifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("missing token")
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("missing sub")
	}

	return sub, nil
}
