package main

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/config"
	"Frontend/routers"
	"Frontend/session"
	"Frontend/storage"
	"context"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("無法讀取設定檔: %v", err)
	}
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("無法開啟儲存空間(%s): %v", cfg.Storage.Driver, err)
	}
	defer store.Close()

	configs := storage.NewConfigStore(store, cfg.Storage.Key)
	configs.Load(ctx)

	cl := client.New(&http.Client{Timeout: cfg.Client.Timeout}, session.New())
	router := routers.SetupRouters(cl, configs, board.New())
	if router == nil {
		log.Fatal("無法建立路由器")
	}

	log.Printf("API測試頁面啟動於 %s (storage=%s)\n", cfg.Server.Addr, cfg.Storage.Driver)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("伺服器停止: %v", err)
	}
}
