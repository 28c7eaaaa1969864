package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newEngine(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Projeto não encontrado")) })
	r.GET("/storage", func(c *gin.Context) { _ = c.Error(apperror.Storage(errors.New("database is locked"))) })
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/bad", func(c *gin.Context) { _ = c.Error(apperror.BadRequest("unexpected EOF")) })

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/missing", http.StatusNotFound, `{"message":"Projeto não encontrado"}`},
		{"/storage", http.StatusInternalServerError, `{"error":"database is locked"}`},
		{"/plain", http.StatusInternalServerError, `{"error":"boom"}`},
		{"/bad", http.StatusBadRequest, `{"error":"unexpected EOF"}`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("Should generate an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Should keep a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Should replace a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(middleware.ErrorHandler(), middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig(2, time.Minute, nil)))
	r.POST("/api/projetos", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/projetos", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, hit().Code)
	second := hit()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := hit()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, third.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(middleware.CORSMiddleware([]string{"https://portfolio.example.com"}, true))
	r.GET("/api/dados", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Should allow a whitelisted origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dados", nil)
		req.Header.Set("Origin", "https://portfolio.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://portfolio.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should reject preflight from an unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/dados", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should refuse localhost in production", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dados", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := newEngine(middleware.SecurityHeadersMiddleware(false))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}
