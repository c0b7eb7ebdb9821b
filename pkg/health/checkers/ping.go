package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = time.Second

// PingChecker проверяет хранилище одним ping с таймаутом.
type PingChecker struct {
	name string
	ping func(ctx context.Context) error
}

func NewPingChecker(name string, ping func(ctx context.Context) error) *PingChecker {
	return &PingChecker{name: name, ping: ping}
}

func NewPostgresChecker(pool *pgxpool.Pool) *PingChecker {
	return NewPingChecker("postgres", pool.Ping)
}

func NewRedisChecker(client *goredis.Client) *PingChecker {
	return NewPingChecker("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.ping(ctx)
}
