package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter keeps one counter per key and window so several server
// processes share a budget.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	seconds := int64(r.window / time.Second)
	slot := r.now().Unix() / seconds
	counterKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)

	resps := r.client.DoMulti(ctx,
		r.client.B().Incr().Key(counterKey).Build(),
		r.client.B().Expire().Key(counterKey).Seconds(seconds).Build(),
	)

	count, err := resps[0].AsInt64()
	if err != nil {
		return false, err
	}
	if err := resps[1].Error(); err != nil {
		return false, err
	}

	return count <= int64(r.limit), nil
}
