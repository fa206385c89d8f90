package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusCreated, `{"id":1}`)
	c := New(nil, nil)
	c.Session().Set("T")

	_, err := c.CreateProduct(context.Background(), upstream.URL(), ProductForm{Name: "Mug", Price: "9.5"})
	require.NoError(t, err)

	req := upstream.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/products", req.Path)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.JSONEq(t, `{
		"name": "Mug",
		"price": 9.5,
		"stock_quantity": 0,
		"category": "general",
		"discount_percentage": 0,
		"image_url": null
	}`, string(req.Body))
}

func TestCreateProductParsesFields(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusCreated, `{}`)
	c := New(nil, nil)

	_, err := c.CreateProduct(context.Background(), upstream.URL(), ProductForm{
		Name:     "Lamp",
		Price:    "abc",
		Stock:    "12 units",
		Category: "home",
		Discount: "12.5",
		ImageURL: "http://img/lamp.png",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Lamp",
		"price": null,
		"stock_quantity": 12,
		"category": "home",
		"discount_percentage": 12.5,
		"image_url": "http://img/lamp.png"
	}`, string(upstream.last().Body))
}

func TestListProductsDefaults(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusOK, `{"products":[]}`)
	c := New(nil, nil)

	_, err := c.ListProducts(context.Background(), upstream.URL(), ListProductsForm{SortBy: "price", SortOrder: "asc", Search: "  ", Category: ""})
	require.NoError(t, err)

	req := upstream.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/products", req.Path)
	assert.Equal(t, "page=1&per_page=5&sort_by=price&sort_order=asc", req.Query)
}

func TestListProductsFilters(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusOK, `{}`)
	c := New(nil, nil)

	_, err := c.ListProducts(context.Background(), upstream.URL(), ListProductsForm{
		Page:      "3",
		PerPage:   "20",
		SortBy:    "name",
		SortOrder: "desc",
		Search:    " red mug ",
		Category:  "kitchen&home",
	})
	require.NoError(t, err)

	assert.Equal(t, "page=3&per_page=20&sort_by=name&sort_order=desc&search=red+mug&category=kitchen%26home", upstream.last().Query)
}

func TestGetProduct(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusNotFound, `{"error":"Product not found"}`)
	c := New(nil, nil)

	result, err := c.GetProduct(context.Background(), upstream.URL(), "42")
	require.NoError(t, err)
	assert.Equal(t, "/products/42", upstream.last().Path)
	assert.Equal(t, http.StatusNotFound, result.Status)

	_, err = c.GetProduct(context.Background(), upstream.URL(), "x")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Len(t, upstream.calls(), 1)
}
