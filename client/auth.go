package client

import (
	"Frontend/models"
	"context"
	"net/http"
	"strings"
)

type RegisterForm struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// 角色去除空白後不為空才帶入
func BuildRegisterRequest(form RegisterForm) models.RegisterRequest {
	return models.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     strings.TrimSpace(form.Role),
	}
}

func BuildLoginRequest(form LoginForm) models.LoginRequest {
	return models.LoginRequest{
		Username: form.Username,
		Password: form.Password,
	}
}

func (c *Client) Register(ctx context.Context, base string, form RegisterForm) (Result, error) {
	return c.authenticate(ctx, base, "/register", BuildRegisterRequest(form))
}

func (c *Client) Login(ctx context.Context, base string, form LoginForm) (Result, error) {
	return c.authenticate(ctx, base, "/login", BuildLoginRequest(form))
}

// 註冊或登入成功且回應帶有token時才更新Session
func (c *Client) authenticate(ctx context.Context, base, path string, body any) (Result, error) {
	result, err := c.do(ctx, call{
		service: models.ServiceAuth,
		method:  http.MethodPost,
		base:    base,
		path:    path,
		body:    body,
	})
	if err != nil {
		return result, err
	}

	if token, ok := tokenFrom(result.Data); ok && result.OK {
		c.session.Set(token)
		result.TokenStored = true
	}
	return result, nil
}

// 以目前的Token向Auth服務驗證
func (c *Client) Verify(ctx context.Context, base string) (Result, error) {
	return c.do(ctx, call{
		service:  models.ServiceAuth,
		method:   http.MethodPost,
		base:     base,
		path:     "/verify",
		withAuth: true,
	})
}
