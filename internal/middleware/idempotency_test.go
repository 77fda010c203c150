package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duosplit/duo_expense_app/internal/cache"
	"github.com/duosplit/duo_expense_app/internal/middleware"
)

func newIdempotencyRouter(handlerCalls *atomic.Int32, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := cache.NewLRUCache[middleware.CachedResponse](16, time.Minute)

	r := gin.New()
	r.POST("/post", middleware.Idempotency(store), func(c *gin.Context) {
		n := handlerCalls.Add(1)
		c.JSON(status, gin.H{"call": n})
	})
	return r
}

func doPost(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/post", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysRecordedResponse(t *testing.T) {
	var calls atomic.Int32
	r := newIdempotencyRouter(&calls, http.StatusCreated)

	first := doPost(r, "key-1")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doPost(r, "key-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int32(1), calls.Load(), "handler must run only once per key")
}

func TestIdempotency_DistinctKeysRunIndependently(t *testing.T) {
	var calls atomic.Int32
	r := newIdempotencyRouter(&calls, http.StatusCreated)

	doPost(r, "key-a")
	doPost(r, "key-b")
	assert.Equal(t, int32(2), calls.Load())
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	var calls atomic.Int32
	r := newIdempotencyRouter(&calls, http.StatusCreated)

	doPost(r, "")
	doPost(r, "")
	assert.Equal(t, int32(2), calls.Load(), "requests without a key are never cached")
}

func TestIdempotency_ServerErrorsNotCached(t *testing.T) {
	var calls atomic.Int32
	r := newIdempotencyRouter(&calls, http.StatusInternalServerError)

	doPost(r, "key-err")
	doPost(r, "key-err")
	assert.Equal(t, int32(2), calls.Load(), "a 5xx outcome must stay retryable")
}

func TestIdempotency_ClientErrorsAreCached(t *testing.T) {
	var calls atomic.Int32
	r := newIdempotencyRouter(&calls, http.StatusBadRequest)

	doPost(r, "key-bad")
	doPost(r, "key-bad")
	assert.Equal(t, int32(1), calls.Load(), "4xx outcomes replay like successes")
}
