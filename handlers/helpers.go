package handlers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/metrics"
	"Frontend/models"
	"Frontend/storage"
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"strings"
)

type action func(ctx context.Context, base string) (client.Result, error)

// 表單有帶<service>_api欄位時以表單為準，否則使用已載入的設定
func resolveBase(c *gin.Context, configs *storage.ConfigStore, service models.Service) string {
	if value, ok := c.GetPostForm(string(service) + "_api"); ok {
		return strings.TrimSpace(value)
	}
	return configs.Current().Base(service)
}

// 將錯誤轉為輸出區的文字，本地拒絕的請求不會送出
func renderError(name string, service models.Service, err error) string {
	switch {
	case errors.Is(err, client.ErrUserIDRequired):
		metrics.LocalRejectionsTotal.WithLabelValues(name).Inc()
		return client.MessageUserIDRequired
	case errors.Is(err, client.ErrBaseURLMissing):
		metrics.LocalRejectionsTotal.WithLabelValues(name).Inc()
		return fmt.Sprintf("Set the %s API base URL first.", service)
	case errors.Is(err, client.ErrInvalidID):
		metrics.LocalRejectionsTotal.WithLabelValues(name).Inc()
		return "ID must be an integer."
	default:
		return "request failed: " + err.Error()
	}
}

// 執行一次動作並將結果寫入對應的輸出區
func runAction(c *gin.Context, b *board.Board, area board.Area, name string, service models.Service, base string, fn action) {
	generation := b.Begin(area)

	result, err := fn(c.Request.Context(), base)
	output := result.Output
	if err != nil {
		log.Printf("%s 失敗: %v\n", name, err)
		output = renderError(name, service, err)
	}

	published := b.Publish(area, generation, output, result.Status)
	c.JSON(http.StatusOK, gin.H{
		"area":         area,
		"generation":   generation,
		"published":    published,
		"status":       result.Status,
		"ok":           err == nil && result.OK,
		"output":       output,
		"token_stored": result.TokenStored,
	})
}

func bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid form data",
			"error":   err.Error(),
		})
		return false
	}
	return true
}
