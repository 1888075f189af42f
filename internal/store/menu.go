// Package store 提供菜單資料的持久層
package store

import (
	"context"
	"errors"

	"taste-of-aloha/internal/model"
)

// ErrNotFound 表示指定 ID 不存在（或不屬於查詢的分類）
var ErrNotFound = errors.New("menu item not found")

// MenuStore 菜單資料存取介面
//
// category 參數為分類範圍；空字串代表整張表，非空時只看該分類的資料。
// Get/Update/Delete 找不到資料時回傳 ErrNotFound。
type MenuStore interface {
	List(ctx context.Context, category string) ([]model.MenuItem, error)
	Get(ctx context.Context, id int, category string) (*model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Update(ctx context.Context, id int, category string, patch model.MenuItemPatch) (*model.MenuItem, error)
	Delete(ctx context.Context, id int, category string) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}
