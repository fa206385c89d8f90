package storage

import (
	"Frontend/config"
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("storage: key not found")

// 本機key-value儲存，只存放扁平的字串資料
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// 依設定選擇儲存方式
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return NewFileStore(cfg.Storage.Path)
	case "redis":
		return NewRedisStore(ctx, config.SetupRedisConnection(cfg), cfg.Storage.Prefix)
	case "mysql":
		db, err := config.SetupMySQLConnection(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return NewMySQLStore(db), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}
}
