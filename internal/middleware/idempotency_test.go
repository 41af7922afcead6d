package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/middleware"
)

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, redisMock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/payrolls",
		func(c *gin.Context) { c.Set("user_id", "user-1") },
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		},
	)
	return r, redisMock
}

func performIdempotentPost(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payrolls", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	r, redisMock := setupIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls:user-1:abc"
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	w := performIdempotentPost(r, "abc")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	r, redisMock := setupIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls:user-1:abc"
	redisMock.ExpectGet(cacheKey).SetVal(`{"id":"pay-1"}`)

	w := performIdempotentPost(r, "abc")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pay-1")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentDuplicateRejected(t *testing.T) {
	r, redisMock := setupIdempotencyRouter(t)

	cacheKey := "idemp:/payrolls:user-1:abc"
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := performIdempotentPost(r, "abc")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	r, redisMock := setupIdempotencyRouter(t)

	w := performIdempotentPost(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
