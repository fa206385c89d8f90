package handlers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/models"
	"Frontend/session"
	"Frontend/storage"
	"context"
	"github.com/gin-gonic/gin"
	"net/http"
)

func RegisterHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.RegisterForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceAuth)
	runAction(c, b, board.AreaAuth, "register", models.ServiceAuth, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.Register(ctx, base, form)
	})
}

func LoginHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.LoginForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceAuth)
	runAction(c, b, board.AreaAuth, "login", models.ServiceAuth, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.Login(ctx, base, form)
	})
}

// 需要持有Token，由CheckLoginMiddleware把關
func VerifyHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	base := resolveBase(c, configs, models.ServiceAuth)
	runAction(c, b, board.AreaAuth, "verify", models.ServiceAuth, base, cl.Verify)
}

// 顯示目前的Token及其內容
func SessionHandler(c *gin.Context, sess *session.Session) {
	resp := gin.H{
		"token": sess.Get(),
	}
	if claims, ok := c.Get("Claims"); ok {
		resp["claims"] = claims
	}
	c.JSON(http.StatusOK, resp)
}

func ClearSessionHandler(c *gin.Context, sess *session.Session, b *board.Board) {
	sess.Clear()
	generation := b.Begin(board.AreaAuth)
	output := "Token cleared."
	published := b.Publish(board.AreaAuth, generation, output, 0)
	c.JSON(http.StatusOK, gin.H{
		"area":       board.AreaAuth,
		"generation": generation,
		"published":  published,
		"output":     output,
	})
}
