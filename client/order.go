package client

import (
	"Frontend/models"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const MessageUserIDRequired = "For v1 without login, provide user_id (or log in and use token)."

var ErrUserIDRequired = errors.New(MessageUserIDRequired)

type OrderForm struct {
	ProductID string `form:"product_id" json:"product_id"`
	Quantity  string `form:"quantity" json:"quantity"`
	Address   string `form:"address" json:"address"`
	UserID    string `form:"user_id" json:"user_id"`
	UseToken  bool   `form:"use_token" json:"use_token"`
}

type UserOrdersForm struct {
	UserID   string `form:"user_id" json:"user_id"`
	Status   string `form:"status" json:"status"`
	UseToken bool   `form:"use_token" json:"use_token"`
}

// 有填user_id時一律帶入；沒有user_id也沒有可用Token時回傳ErrUserIDRequired
func BuildOrderRequest(form OrderForm, hasToken bool) (models.CreateOrderRequest, error) {
	req := models.CreateOrderRequest{
		Items: []models.OrderItem{{
			ProductID: models.ParseInt(models.Or(form.ProductID, "1")),
			Quantity:  models.ParseInt(models.Or(form.Quantity, "1")),
		}},
		ShippingAddress: models.Or(form.Address, "123 Main St"),
	}

	if form.UserID != "" {
		userID := models.ParseInt(form.UserID)
		req.UserID = &userID
	} else if !hasToken {
		return req, ErrUserIDRequired
	}
	return req, nil
}

func (c *Client) CreateOrder(ctx context.Context, base string, form OrderForm) (Result, error) {
	hasToken := form.UseToken && c.session.HasToken()

	body, err := BuildOrderRequest(form, hasToken)
	if err != nil {
		return Result{}, err
	}

	return c.do(ctx, call{
		service:  models.ServiceOrder,
		method:   http.MethodPost,
		base:     base,
		path:     "/orders",
		body:     body,
		withAuth: hasToken,
	})
}

// 查詢單一訂單
func (c *Client) GetOrder(ctx context.Context, base, id string, useToken bool) (Result, error) {
	orderID := models.ParseInt(id)
	if !orderID.Valid {
		return Result{}, ErrInvalidID
	}
	return c.do(ctx, call{
		service:  models.ServiceOrder,
		method:   http.MethodGet,
		base:     base,
		path:     "/orders/" + strconv.FormatInt(orderID.Value, 10),
		withAuth: useToken,
	})
}

// 查詢使用者的訂單，可依狀態篩選
func (c *Client) ListUserOrders(ctx context.Context, base string, form UserOrdersForm) (Result, error) {
	userID := models.ParseInt(form.UserID)
	if !userID.Valid {
		return Result{}, ErrInvalidID
	}

	var query string
	if status := strings.TrimSpace(form.Status); status != "" {
		query = "status=" + url.QueryEscape(status)
	}

	return c.do(ctx, call{
		service:  models.ServiceOrder,
		method:   http.MethodGet,
		base:     base,
		path:     "/orders/user/" + strconv.FormatInt(userID.Value, 10),
		query:    query,
		withAuth: form.UseToken,
	})
}
