package models

type OrderItem struct {
	ProductID FormInt `json:"product_id"`
	Quantity  FormInt `json:"quantity"`
}

// UserID為nil時不帶入user_id欄位
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	UserID          *FormInt    `json:"user_id,omitempty"`
}
