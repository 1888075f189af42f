// File: internal/api/menu_item_response.go
package api

import (
	"time"

	"taste-of-aloha/internal/model"
)

// swagger:model api.MenuItemResponse
type MenuItemResponse struct {
	ID          int       `json:"id" example:"3"`
	Name        string    `json:"name" example:"Malasada"`
	Description string    `json:"description" example:"Portuguese-style fried dough"`
	Price       float64   `json:"price" example:"3.5"`
	Image       *string   `json:"image"`
	Category    string    `json:"category" example:"dessert"`
	IsAvailable bool      `json:"isAvailable" example:"true"`
	CreatedAt   time.Time `json:"createdAt"`
}

// swagger:model api.MenuItemListResponse
type MenuItemListResponse struct {
	Success bool               `json:"success" example:"true"`
	Count   int                `json:"count" example:"2"`
	Data    []MenuItemResponse `json:"data"`
}

// NewMenuItemResponse 將資料列轉為回應格式，price 以 JSON 數字輸出
func NewMenuItemResponse(m model.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price.InexactFloat64(),
		Image:       m.Image,
		Category:    m.Category,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
	}
}

func NewMenuItemListResponse(items []model.MenuItem) MenuItemListResponse {
	data := make([]MenuItemResponse, 0, len(items))
	for _, m := range items {
		data = append(data, NewMenuItemResponse(m))
	}
	return MenuItemListResponse{Success: true, Count: len(data), Data: data}
}
