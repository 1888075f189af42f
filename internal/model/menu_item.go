// File: internal/model/menu_item.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCategory = "General"
	SnackCategory   = "Snack"
)

// MenuItem 對應 menu 資料表的一列
type MenuItem struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       *string         `db:"image" json:"image"`
	Category    string          `db:"category" json:"category"`
	IsAvailable bool            `db:"is_available" json:"isAvailable"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// MenuItemPatch 描述部分更新；nil 欄位保留原值
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	IsAvailable *bool
}

// Apply 將 patch 合併至 item，ID 與 CreatedAt 不會變動
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Image != nil {
		img := *p.Image
		item.Image = &img
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}
}

// InScope 回報 item 是否屬於指定分類；空字串代表不限分類
func (m MenuItem) InScope(category string) bool {
	return category == "" || m.Category == category
}
