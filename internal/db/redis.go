package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/restodesk/backoffice/internal/config"
)

// OpenRedis returns nil without error when redis is disabled, callers then
// fall back to in-process stores.
func OpenRedis(ctx context.Context, conf *config.RedisConfig) (*redis.Client, error) {
	if conf == nil || !conf.Enabled {
		return nil, nil
	}

	var tlsConf *tls.Config
	if conf.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      conf.Addr,
		Password:  conf.Password,
		DB:        conf.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	return client, nil
}
