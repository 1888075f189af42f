// File: internal/api/menu_item_request.go
package api

import "github.com/shopspring/decimal"

// CreateMenuItemRequest 建立菜單項目的輸入；price 可為數字或數字字串
// swagger:model api.CreateMenuItemRequest
type CreateMenuItemRequest struct {
	Name        string           `json:"name" validate:"required,max=255" example:"Malasada"`
	Description string           `json:"description" validate:"max=2000" example:"Portuguese-style fried dough"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" example:"3.50"`
	Image       *string          `json:"image" validate:"omitempty,max=2048" example:"https://example.com/malasada.png"`
	Category    string           `json:"category" validate:"max=100" example:"dessert"`
	IsAvailable *bool            `json:"isAvailable" example:"true"`
}

// UpdateMenuItemRequest 部分更新；省略或 null 的欄位保留原值
// swagger:model api.UpdateMenuItemRequest
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=255" example:"Updated Musubi"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" example:"5.99"`
	// 空字串視同未提供，無法透過更新把 image 清成 null
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	IsAvailable *bool   `json:"isAvailable" example:"false"`
}
