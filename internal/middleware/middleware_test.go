package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	os.Exit(m.Run())
}

func newProtectedRouter(tm *TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(tm))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(UserIDKey)})
	})
	return r
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	user := &models.User{Base: models.Base{ID: "0190a0b2-1111-7000-8000-000000000001"}, Email: "a@example.com"}
	valid, err := tm.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	expiredTM := NewTokenManager("test-secret", time.Hour)
	expiredTM.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredTM.GenerateAccessToken(user)

	otherSecret, _ := NewTokenManager("other-secret", time.Hour).GenerateAccessToken(user)

	foreignIssuer, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"lowercase_scheme", "bearer " + valid, http.StatusOK},
		{"missing_header", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic " + valid, http.StatusUnauthorized},
		{"no_token", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong_secret", "Bearer " + otherSecret, http.StatusUnauthorized},
		{"wrong_issuer", "Bearer " + foreignIssuer, http.StatusUnauthorized},
	}

	r := newProtectedRouter(tm)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if code := errorCode(t, w); code != "UNAUTHORIZED" {
					t.Errorf("expected UNAUTHORIZED, got %s", code)
				}
				return
			}

			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["userId"] != user.ID {
				t.Errorf("expected user id %s in context, got %s", user.ID, body["userId"])
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrBudgetNotFound)
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(errors.New("boom: secret dsn"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	if w.Code != http.StatusNotFound || errorCode(t, w) != "BUDGET_NOT_FOUND" {
		t.Errorf("expected 404 BUDGET_NOT_FOUND, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	if w.Code != http.StatusInternalServerError || errorCode(t, w) != "INTERNAL_ERROR" {
		t.Errorf("expected 500 INTERNAL_ERROR, got %d %s", w.Code, w.Body.String())
	}
}

func TestRequestLogging_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	const incoming = "0190a0b2-2222-7000-8000-000000000002"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != incoming {
		t.Errorf("expected request id %s to be reused, got %s", incoming, got)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://app.example.com"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("expected preflight 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("unexpected allow origin %q", got)
	}
}
