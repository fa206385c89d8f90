package handlers

import (
	"Frontend/board"
	"Frontend/session"
	"Frontend/storage"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 顯示操作頁面
func IndexHandler(c *gin.Context, configs *storage.ConfigStore, sess *session.Session, b *board.Board) {
	snapshot := b.Snapshot()
	outputs := map[string]board.Entry{}
	for _, area := range []board.Area{board.AreaAuth, board.AreaProducts, board.AreaOrders, board.AreaHealth} {
		outputs[string(area)] = snapshot[area]
	}

	var configNotice *board.Notice
	if n, ok := b.Notice(board.AreaConfig); ok {
		configNotice = &n
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Config":       configs.Current(),
		"Token":        sess.Get(),
		"Outputs":      outputs,
		"ConfigNotice": configNotice,
	})
}

// 目前狀態，供頁面重新整理輸出區
func StateHandler(c *gin.Context, configs *storage.ConfigStore, sess *session.Session, b *board.Board) {
	notice, _ := b.Notice(board.AreaConfig)
	c.JSON(http.StatusOK, gin.H{
		"config":  configs.Current(),
		"token":   sess.Get(),
		"outputs": b.Snapshot(),
		"notice":  notice,
	})
}
