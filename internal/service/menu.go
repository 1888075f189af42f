// File: internal/service/menu.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taste-of-aloha/internal/api"
	"taste-of-aloha/internal/model"
	"taste-of-aloha/internal/store"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidMenuItem 輸入在正規化後仍不合法
	ErrInvalidMenuItem = errors.New("invalid menu item")
	// ErrOutOfScope 嘗試把項目移出資源所屬的分類
	ErrOutOfScope = errors.New("category is fixed for this resource")
)

// NormalizeMenuItem 將建立請求轉為完整的資料列，補上預設值
// description 預設空字串、price 預設 0、category 預設 General、isAvailable 預設 true
func NormalizeMenuItem(req api.CreateMenuItemRequest) model.MenuItem {
	item := model.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       decimal.Zero,
		Category:    strings.TrimSpace(req.Category),
		IsAvailable: true,
	}
	if req.Price != nil {
		item.Price = req.Price.Round(2)
	}
	if item.Category == "" {
		item.Category = model.DefaultCategory
	}
	item.Image = nonBlank(req.Image)
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	return item
}

// BuildMenuItemPatch 將更新請求轉為 patch，空白字串視同未提供
func BuildMenuItemPatch(req api.UpdateMenuItemRequest) model.MenuItemPatch {
	p := model.MenuItemPatch{
		Name:        nonBlank(req.Name),
		Description: nonBlank(req.Description),
		Image:       nonBlank(req.Image),
		Category:    nonBlank(req.Category),
		IsAvailable: req.IsAvailable,
	}
	if req.Price != nil {
		price := req.Price.Round(2)
		p.Price = &price
	}
	return p
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// MenuService 綁定一個 store 與分類範圍，對應一個 HTTP 資源
type MenuService struct {
	store    store.MenuStore
	category string
}

// NewMenuService category 為空字串時代表整份菜單
func NewMenuService(s store.MenuStore, category string) *MenuService {
	return &MenuService{store: s, category: category}
}

func (s *MenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.store.List(ctx, s.category)
}

func (s *MenuService) Get(ctx context.Context, id int) (*model.MenuItem, error) {
	return s.store.Get(ctx, id, s.category)
}

func (s *MenuService) Create(ctx context.Context, req api.CreateMenuItemRequest) (*model.MenuItem, error) {
	item := NormalizeMenuItem(req)
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if s.category != "" {
		item.Category = s.category
	}
	return s.store.Create(ctx, item)
}

func (s *MenuService) Update(ctx context.Context, id int, req api.UpdateMenuItemRequest) (*model.MenuItem, error) {
	p := BuildMenuItemPatch(req)
	if s.category != "" && p.Category != nil && *p.Category != s.category {
		return nil, fmt.Errorf("%w: %q", ErrOutOfScope, s.category)
	}
	return s.store.Update(ctx, id, s.category, p)
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id, s.category)
}

// DeleteByName 刪除所有同名項目，不受分類範圍限制
func (s *MenuService) DeleteByName(ctx context.Context, name string) (int64, error) {
	return s.store.DeleteByName(ctx, name)
}
