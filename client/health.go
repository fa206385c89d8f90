package client

import (
	"Frontend/models"
	"context"
	"net/http"
)

func (c *Client) Health(ctx context.Context, service models.Service, base string) (Result, error) {
	return c.do(ctx, call{
		service: service,
		method:  http.MethodGet,
		base:    base,
		path:    "/health",
	})
}
