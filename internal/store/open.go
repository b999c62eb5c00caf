package store

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/config"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/db"
)

// Open selects the slot backend named by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (KV, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return NewMemoryKV(), nil
	case config.BackendPostgres:
		conn, err := db.Connect(db.Options{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
		})
		if err != nil {
			return nil, err
		}
		kv, err := NewPostgresKV(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return kv, nil
	case config.BackendRedis:
		return NewRedisKV(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
