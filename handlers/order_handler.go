package handlers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/models"
	"Frontend/storage"
	"context"
	"github.com/gin-gonic/gin"
)

type orderLookupForm struct {
	ID       string `form:"id"`
	UseToken bool   `form:"use_token"`
}

// 送出訂單，沒有user_id也沒有Token時不會送出請求
func CreateOrderHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.OrderForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceOrder)
	runAction(c, b, board.AreaOrders, "create_order", models.ServiceOrder, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.CreateOrder(ctx, base, form)
	})
}

func GetOrderHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form orderLookupForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceOrder)
	runAction(c, b, board.AreaOrders, "get_order", models.ServiceOrder, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.GetOrder(ctx, base, form.ID, form.UseToken)
	})
}

func ListUserOrdersHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.UserOrdersForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceOrder)
	runAction(c, b, board.AreaOrders, "user_orders", models.ServiceOrder, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.ListUserOrders(ctx, base, form)
	})
}
