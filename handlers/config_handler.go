package handlers

import (
	"Frontend/board"
	"Frontend/models"
	"Frontend/storage"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type configForm struct {
	Product string `form:"product_api"`
	Auth    string `form:"auth_api"`
	Order   string `form:"order_api"`
}

func GetConfigHandler(c *gin.Context, configs *storage.ConfigStore) {
	c.JSON(http.StatusOK, gin.H{
		"config": configs.Current(),
	})
}

// 儲存三個Base URL，整筆覆寫
func SaveConfigHandler(c *gin.Context, configs *storage.ConfigStore, b *board.Board) {
	var form configForm
	if !bindForm(c, &form) {
		return
	}

	saved, err := configs.Save(c.Request.Context(), models.APIConfig{
		Product: form.Product,
		Auth:    form.Auth,
		Order:   form.Order,
	})
	if err != nil {
		log.Printf("無法儲存設定: %v\n", err)
		b.Notify(board.AreaConfig, "Save failed", "error", board.NoticeTTL)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Save failed",
			"error":   err.Error(),
		})
		return
	}

	b.Notify(board.AreaConfig, "Saved", "success", board.NoticeTTL)
	c.JSON(http.StatusOK, gin.H{
		"message": "Saved",
		"config":  saved,
	})
}
