package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestMemoryLimiter_Window(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := limiter.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	ok, _ = limiter.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other clients keep their own budget")

	now = now.Add(time.Minute)
	ok, _ = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "budget resets with the next window")
}

func setupRedisLimiter(t *testing.T, limit int) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
		AlwaysRESP2:  true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return NewRedisLimiter(client, "test:rate", limit, time.Minute), mr
}

func TestRedisLimiter_Window(t *testing.T) {
	limiter, mr := setupRedisLimiter(t, 2)
	now := time.Unix(1_700_000_040, 0)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	key := "test:rate:10.0.0.1:28333334"
	assert.True(t, mr.Exists(key))
	assert.True(t, mr.TTL(key) > 0)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	limiter, mr := setupRedisLimiter(t, 2)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := limiter.Allow(ctx, "10.0.0.1")
	assert.Error(t, err)
}

func TestRateLimiter_Middleware(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	run := func(mw echo.MiddlewareFunc) int {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		err := mw(ok)(c)
		if err != nil {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				return he.Code
			}
			return http.StatusInternalServerError
		}
		return c.Response().Status
	}

	limited := RateLimiter(NewMemoryLimiter(1, time.Minute), log)
	assert.Equal(t, http.StatusNoContent, run(limited))
	assert.Equal(t, http.StatusTooManyRequests, run(limited))

	assert.Equal(t, http.StatusNoContent, run(RateLimiter(brokenLimiter{}, log)))
}
