package main

import (
	"fmt"

	"github.com/stateboard/stateboard/internal/config"
	"github.com/stateboard/stateboard/pkg/adapters/memory"
	"github.com/stateboard/stateboard/pkg/adapters/redis"
	"github.com/stateboard/stateboard/pkg/adapters/sqlite"
	"github.com/stateboard/stateboard/pkg/ports"
)

// openStores builds the configured persistence backend. The returned cleanup
// is safe to call even when it is a no-op.
func openStores(cfg config.Config) (ports.UserStore, ports.TaskStore, func() error, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		return store, store, func() error { return nil }, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, store, store.Close, nil

	case config.DriverRedis:
		var opts []redis.Option
		if cfg.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Store.Redis.Prefix))
		}
		store := redis.New(cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB, opts...)
		return store, store, store.Close, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
