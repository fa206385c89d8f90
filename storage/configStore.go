package storage

import (
	"Frontend/models"
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// 保存三個服務的Base URL，並維護目前使用中的設定
type ConfigStore struct {
	store Store
	key   string

	mu      sync.RWMutex
	current models.APIConfig
}

func NewConfigStore(store Store, key string) *ConfigStore {
	return &ConfigStore{store: store, key: key}
}

// 讀取已儲存的設定，不存在或格式錯誤時一律視為空設定
func (s *ConfigStore) Load(ctx context.Context) models.APIConfig {
	cfg := models.APIConfig{}

	raw, err := s.store.Get(ctx, s.key)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		log.Printf("無法讀取設定 %s: %v\n", s.key, err)
	default:
		var blob map[string]any
		if err := json.Unmarshal([]byte(raw), &blob); err != nil {
			log.Printf("設定格式錯誤 %s: %v\n", s.key, err)
		} else {
			cfg = models.APIConfigFromMap(blob)
		}
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return cfg
}

// 去除空白後整筆覆寫，不檢查URL格式
func (s *ConfigStore) Save(ctx context.Context, cfg models.APIConfig) (models.APIConfig, error) {
	cfg = cfg.Trimmed()

	raw, err := json.Marshal(cfg)
	if err != nil {
		return cfg, err
	}
	if err := s.store.Set(ctx, s.key, string(raw)); err != nil {
		return cfg, err
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return cfg, nil
}

func (s *ConfigStore) Current() models.APIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
