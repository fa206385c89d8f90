package models

import "strings"

// 三個後端服務的Base URL，以JSON形式存於固定的key下
type APIConfig struct {
	Product string `json:"product"`
	Auth    string `json:"auth"`
	Order   string `json:"order"`
}

type Service string

const (
	ServiceProduct Service = "product"
	ServiceAuth    Service = "auth"
	ServiceOrder   Service = "order"
)

var Services = []Service{ServiceProduct, ServiceAuth, ServiceOrder}

// 去除前後空白
func (c APIConfig) Trimmed() APIConfig {
	return APIConfig{
		Product: strings.TrimSpace(c.Product),
		Auth:    strings.TrimSpace(c.Auth),
		Order:   strings.TrimSpace(c.Order),
	}
}

// 取得指定服務的Base URL
func (c APIConfig) Base(service Service) string {
	switch service {
	case ServiceProduct:
		return strings.TrimSpace(c.Product)
	case ServiceAuth:
		return strings.TrimSpace(c.Auth)
	case ServiceOrder:
		return strings.TrimSpace(c.Order)
	default:
		return ""
	}
}

// 從寬鬆的key-value資料取出設定，非字串的欄位一律忽略
func APIConfigFromMap(raw map[string]any) APIConfig {
	var cfg APIConfig
	if v, ok := raw["product"].(string); ok {
		cfg.Product = v
	}
	if v, ok := raw["auth"].(string); ok {
		cfg.Auth = v
	}
	if v, ok := raw["order"].(string); ok {
		cfg.Order = v
	}
	return cfg
}
