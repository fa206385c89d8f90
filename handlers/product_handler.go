package handlers

import (
	"Frontend/board"
	"Frontend/client"
	"Frontend/models"
	"Frontend/storage"
	"context"
	"github.com/gin-gonic/gin"
)

type productLookupForm struct {
	ID string `form:"id"`
}

func CreateProductHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.ProductForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceProduct)
	runAction(c, b, board.AreaProducts, "create_product", models.ServiceProduct, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.CreateProduct(ctx, base, form)
	})
}

// 查詢商品列表，分頁參數原樣轉送
func ListProductsHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form client.ListProductsForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceProduct)
	runAction(c, b, board.AreaProducts, "list_products", models.ServiceProduct, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.ListProducts(ctx, base, form)
	})
}

func GetProductHandler(c *gin.Context, cl *client.Client, configs *storage.ConfigStore, b *board.Board) {
	var form productLookupForm
	if !bindForm(c, &form) {
		return
	}
	base := resolveBase(c, configs, models.ServiceProduct)
	runAction(c, b, board.AreaProducts, "get_product", models.ServiceProduct, base, func(ctx context.Context, base string) (client.Result, error) {
		return cl.GetProduct(ctx, base, form.ID)
	})
}
