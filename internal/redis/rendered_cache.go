package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/chronist/daybook/internal/model"
)

const renderedKeyPrefix = "rendered:"

// RenderedCache keeps rendered day replies in redis so repeated lookups for
// the same month-day skip the catalog and formatter.
type RenderedCache struct {
	pool *redis.Pool
}

func NewRenderedCache(pool *redis.Pool) *RenderedCache {
	return &RenderedCache{pool: pool}
}

func (c *RenderedCache) Get(ctx context.Context, md model.MonthDay) (string, bool, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	text, err := redis.String(conn.Do("GET", renderedKeyPrefix+md.String()))
	if errors.Is(err, redis.ErrNil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("GET: %w", err)
	}

	return text, true, nil
}

func (c *RenderedCache) Set(ctx context.Context, md model.MonthDay, text string, ttl time.Duration) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	seconds := int64(ttl.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	if _, err := conn.Do("SET", renderedKeyPrefix+md.String(), text, "EX", seconds); err != nil {
		return fmt.Errorf("SET: %w", err)
	}

	return nil
}
