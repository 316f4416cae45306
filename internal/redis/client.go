// Package redis wraps the go-redis client so repositories depend on a small
// interface that tests can back with miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

// Options configures Redis client behavior.
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// MasterName switches to Sentinel failover when set.
	MasterName string
}

// NewClient creates a client for the given endpoints. One endpoint gives a
// single-node client, several give a cluster client, and Options.MasterName
// treats the endpoints as sentinels.
func NewClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 || endpoints[0] == "" {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	universal := &redis.UniversalOptions{
		Addrs:           endpoints,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		MasterName:      opts.MasterName,
	}

	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // self-signed certs in dev clusters
		}
	}

	return redis.NewUniversalClient(universal), nil
}

// Ping checks connectivity and reports failures as Unavailable.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
