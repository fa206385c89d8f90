package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBody(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusCreated, `{"message":"ok"}`)
	c := New(nil, nil)

	_, err := c.Register(context.Background(), upstream.URL(), RegisterForm{
		Username: "alice",
		Email:    "a@example.com",
		Password: "Secret1!",
		Role:     "  admin ",
	})
	require.NoError(t, err)

	req := upstream.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/register", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.JSONEq(t, `{"username":"alice","email":"a@example.com","password":"Secret1!","role":"admin"}`, string(req.Body))
}

func TestRegisterOmitsBlankRole(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusCreated, `{}`)
	c := New(nil, nil)

	_, err := c.Register(context.Background(), upstream.URL(), RegisterForm{Username: "u", Email: "e", Password: "p", Role: "   "})
	require.NoError(t, err)

	assert.NotContains(t, decodeBody(t, upstream.last().Body), "role")
}

func TestLoginStoresTokenAndAuthorizesLaterCalls(t *testing.T) {
	auth := newFakeUpstream(t, http.StatusOK, `{"message":"Login successful","token":"T"}`)
	orders := newFakeUpstream(t, http.StatusCreated, `{"id":1}`)
	c := New(nil, nil)

	result, err := c.Login(context.Background(), auth.URL(), LoginForm{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.True(t, result.TokenStored)
	assert.Equal(t, "T", c.Session().Get())
	assert.JSONEq(t, `{"username":"u","password":"p"}`, string(auth.last().Body))
	assert.Empty(t, auth.last().Header.Get("Authorization"))

	_, err = c.CreateOrder(context.Background(), orders.URL(), OrderForm{UseToken: true})
	require.NoError(t, err)
	assert.Equal(t, "Bearer T", orders.last().Header.Get("Authorization"))
}

func TestLoginWithoutTokenLeavesSessionUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"no token key", http.StatusOK, `{"message":"ok"}`},
		{"empty token", http.StatusOK, `{"token":""}`},
		{"non string token", http.StatusOK, `{"token":123}`},
		{"error status with token", http.StatusUnauthorized, `{"token":"X","error":"Invalid credentials"}`},
		{"not json", http.StatusOK, `token=X`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := newFakeUpstream(t, tt.status, tt.body)
			c := New(nil, nil)
			c.Session().Set("prior")

			result, err := c.Login(context.Background(), upstream.URL(), LoginForm{})
			require.NoError(t, err)
			assert.False(t, result.TokenStored)
			assert.Equal(t, "prior", c.Session().Get())
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func TestErrorStatusRenderedLikeSuccess(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusConflict, `{"error":"Username already exists"}`)
	c := New(nil, nil)

	result, err := c.Register(context.Background(), upstream.URL(), RegisterForm{})
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusConflict, result.Status)
	assert.Equal(t, "{\n  \"error\": \"Username already exists\"\n}", result.Output)
}

func TestVerifySendsBearer(t *testing.T) {
	upstream := newFakeUpstream(t, http.StatusOK, `{"valid":true}`)
	c := New(nil, nil)
	c.Session().Set("T")

	_, err := c.Verify(context.Background(), upstream.URL())
	require.NoError(t, err)
	assert.Equal(t, "/verify", upstream.last().Path)
	assert.Equal(t, "Bearer T", upstream.last().Header.Get("Authorization"))
}
