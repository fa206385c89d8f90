package models

type CreateProductRequest struct {
	Name               string    `json:"name"`
	Price              FormFloat `json:"price"`
	StockQuantity      FormInt   `json:"stock_quantity"`
	Category           string    `json:"category"`
	DiscountPercentage FormFloat `json:"discount_percentage"`
	ImageURL           *string   `json:"image_url"`
}

// 商品列表查詢參數，Search和Category為空時不帶入
type ListProductsQuery struct {
	Page      string
	PerPage   string
	SortBy    string
	SortOrder string
	Search    string
	Category  string
}
