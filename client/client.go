package client

import (
	"Frontend/metrics"
	"Frontend/models"
	"Frontend/session"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

var (
	ErrBaseURLMissing = errors.New("base URL is not configured")
	ErrInvalidID      = errors.New("id must be an integer")
)

// 一次請求的結果，Output為排版後的JSON
type Result struct {
	Status      int    `json:"status"`
	OK          bool   `json:"ok"`
	Data        any    `json:"data"`
	Output      string `json:"output"`
	TokenStored bool   `json:"token_stored"`
}

// 把表單內容轉成對後端服務的HTTP請求
type Client struct {
	http    *http.Client
	session *session.Session
}

func New(httpClient *http.Client, sess *session.Session) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if sess == nil {
		sess = session.New()
	}
	return &Client{http: httpClient, session: sess}
}

func (c *Client) Session() *session.Session {
	return c.session
}

type call struct {
	service  models.Service
	method   string
	base     string
	path     string
	query    string
	body     any
	withAuth bool
}

// 送出請求並解析回應，回應不是JSON時以空物件代替
func (c *Client) do(ctx context.Context, req call) (Result, error) {
	if req.base == "" {
		return Result{}, fmt.Errorf("%w: %s", ErrBaseURLMissing, req.service)
	}

	url := req.base + req.path
	if req.query != "" {
		url += "?" + req.query
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return Result{}, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, body)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	for k, v := range c.session.Headers(req.withAuth) {
		httpReq.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	start := time.Now()
	resp, err := c.http.Do(httpReq)
	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(string(req.service)).Observe(elapsed.Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(req.service), "error").Inc()
		log.Printf("[%s] %s %s 請求失敗: %v\n", requestID, req.method, url, err)
		return Result{}, err
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(string(req.service), strconv.Itoa(resp.StatusCode)).Inc()
	log.Printf("[%s] %s %s -> %d (%s)\n", requestID, req.method, url, resp.StatusCode, elapsed)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[%s] 讀取回應失敗: %v\n", requestID, err)
		raw = nil
	}

	data, output := parseBody(raw)
	return Result{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Data:   data,
		Output: output,
	}, nil
}

// 解析回應內容並以兩格縮排輸出，保留原本的欄位順序
func parseBody(raw []byte) (any, string) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !json.Valid(raw) {
		return map[string]any{}, "{}"
	}

	value, err := decodeOrdered(raw)
	if err != nil {
		return map[string]any{}, "{}"
	}
	return plainValue(value), renderJSON(value)
}

// 回應為物件且token為非空字串時回傳該token
func tokenFrom(data any) (string, bool) {
	obj, ok := data.(map[string]any)
	if !ok {
		return "", false
	}
	token, ok := obj["token"].(string)
	return token, ok && token != ""
}
