package handlers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/models"
	"Frontend/storage"
	"context"
	"github.com/gin-gonic/gin"
	"net/http"
)

type healthURI struct {
	Service string `uri:"service" binding:"required,oneof=auth product order"`
}

// 檢查指定服務的/health
func HealthHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var uri healthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "unknown service",
			"error":   err.Error(),
		})
		return
	}
	service := models.Service(uri.Service)

	base := resolveBase(c, configs, service)
	runAction(c, b, board.AreaHealth, "health_"+string(service), service, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.Health(ctx, service, base)
	})
}
