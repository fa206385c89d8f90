package client

import (
	"Frontend/models"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type ProductForm struct {
	Name     string `form:"name" json:"name"`
	Price    string `form:"price" json:"price"`
	Stock    string `form:"stock" json:"stock"`
	Category string `form:"category" json:"category"`
	Discount string `form:"discount" json:"discount"`
	ImageURL string `form:"image_url" json:"image_url"`
}

type ListProductsForm struct {
	Page      string `form:"page" json:"page"`
	PerPage   string `form:"per_page" json:"per_page"`
	SortBy    string `form:"sort_by" json:"sort_by"`
	SortOrder string `form:"sort_order" json:"sort_order"`
	Search    string `form:"search" json:"search"`
	Category  string `form:"category" json:"category"`
}

// 空白的庫存與折扣視為0，分類預設general，圖片網址為空時送null
func BuildProductRequest(form ProductForm) models.CreateProductRequest {
	req := models.CreateProductRequest{
		Name:               form.Name,
		Price:              models.ParseFloat(form.Price),
		StockQuantity:      models.ParseInt(models.Or(form.Stock, "0")),
		Category:           models.Or(form.Category, "general"),
		DiscountPercentage: models.ParseFloat(models.Or(form.Discount, "0")),
	}
	if form.ImageURL != "" {
		imageURL := form.ImageURL
		req.ImageURL = &imageURL
	}
	return req
}

func BuildListProductsQuery(form ListProductsForm) models.ListProductsQuery {
	return models.ListProductsQuery{
		Page:      models.Or(form.Page, "1"),
		PerPage:   models.Or(form.PerPage, "5"),
		SortBy:    form.SortBy,
		SortOrder: form.SortOrder,
		Search:    strings.TrimSpace(form.Search),
		Category:  strings.TrimSpace(form.Category),
	}
}

// 依固定順序組成查詢字串
func EncodeListProductsQuery(q models.ListProductsQuery) string {
	pairs := [][2]string{
		{"page", q.Page},
		{"per_page", q.PerPage},
		{"sort_by", q.SortBy},
		{"sort_order", q.SortOrder},
	}
	if q.Search != "" {
		pairs = append(pairs, [2]string{"search", q.Search})
	}
	if q.Category != "" {
		pairs = append(pairs, [2]string{"category", q.Category})
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, url.QueryEscape(p[0])+"="+url.QueryEscape(p[1]))
	}
	return strings.Join(parts, "&")
}

func (c *Client) CreateProduct(ctx context.Context, base string, form ProductForm) (Result, error) {
	return c.do(ctx, call{
		service: models.ServiceProduct,
		method:  http.MethodPost,
		base:    base,
		path:    "/products",
		body:    BuildProductRequest(form),
	})
}

func (c *Client) ListProducts(ctx context.Context, base string, form ListProductsForm) (Result, error) {
	return c.do(ctx, call{
		service: models.ServiceProduct,
		method:  http.MethodGet,
		base:    base,
		path:    "/products",
		query:   EncodeListProductsQuery(BuildListProductsQuery(form)),
	})
}

// 查詢單一商品
func (c *Client) GetProduct(ctx context.Context, base, id string) (Result, error) {
	productID := models.ParseInt(id)
	if !productID.Valid {
		return Result{}, ErrInvalidID
	}
	return c.do(ctx, call{
		service: models.ServiceProduct,
		method:  http.MethodGet,
		base:    base,
		path:    "/products/" + strconv.FormatInt(productID.Value, 10),
	})
}
