package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Run("generates new request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, GetRequestID(c))
		})

		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

		headerID := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, headerID)
		assert.Equal(t, headerID, w.Body.String())
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, GetRequestID(c))
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "existing-request-id-123")
		w := serve(router, req)

		assert.Equal(t, "existing-request-id-123", w.Body.String())
	})

	t.Run("GetRequestID returns empty string if not set", func(t *testing.T) {
		assert.Empty(t, GetRequestID(&gin.Context{}))
	})
}

func TestLogger(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/ok", func(c *gin.Context) {
		c.Set("user_id", uint(3))
		c.Status(http.StatusOK)
	})
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := []struct {
		path  string
		level logrus.Level
	}{
		{"/ok?page=2", logrus.InfoLevel},
		{"/bad", logrus.WarnLevel},
		{"/boom", logrus.ErrorLevel},
	}

	for _, tt := range tests {
		hook.Reset()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		req.Header.Set(RequestIDHeader, "req-1")
		serve(router, req)

		entry := hook.LastEntry()
		require.NotNil(t, entry, tt.path)
		assert.Equal(t, tt.level, entry.Level, tt.path)
		assert.Equal(t, "req-1", entry.Data["request_id"])
	}

	hook.Reset()
	serve(router, httptest.NewRequest(http.MethodGet, "/ok?page=2", nil))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, uint(3), entry.Data["user_id"])
	assert.Equal(t, "page=2", entry.Data["query"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestRecovery(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-panic")
	w := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","request_id":"req-panic"}`, w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Panic recovered", entry.Message)
	assert.Contains(t, entry.Data["stack"], "runtime/debug")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allows configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := serve(router, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, strings.EqualFold(RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers")))
	})

	t.Run("rejects other origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := serve(router, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("answers preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics()

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/farms/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/farms/1", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/farms/2", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/farms/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.inFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}
