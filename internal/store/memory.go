package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"taste-of-aloha/internal/model"
)

// MemoryMenuStore 將菜單保存在記憶體中，ID 單調遞增且不重複使用
type MemoryMenuStore struct {
	mu     sync.RWMutex
	items  map[int]model.MenuItem
	lastID int
	now    func() time.Time
}

func NewMemoryMenuStore() *MemoryMenuStore {
	return &MemoryMenuStore{
		items: make(map[int]model.MenuItem),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryMenuStore) List(_ context.Context, category string) ([]model.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.MenuItem, 0, len(s.items))
	for _, m := range s.items {
		if m.InScope(category) {
			items = append(items, clone(m))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (s *MemoryMenuStore) Get(_ context.Context, id int, category string) (*model.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.items[id]
	if !ok || !m.InScope(category) {
		return nil, fmt.Errorf("GetMenuItem: %w", ErrNotFound)
	}
	m = clone(m)
	return &m, nil
}

func (s *MemoryMenuStore) Create(_ context.Context, item model.MenuItem) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	item.ID = s.lastID
	item.CreatedAt = s.now()
	item = clone(item)
	s.items[item.ID] = item

	out := clone(item)
	return &out, nil
}

func (s *MemoryMenuStore) Update(_ context.Context, id int, category string, p model.MenuItemPatch) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok || !m.InScope(category) {
		return nil, fmt.Errorf("UpdateMenuItem: %w", ErrNotFound)
	}
	p.Apply(&m)
	s.items[id] = m

	out := clone(m)
	return &out, nil
}

func (s *MemoryMenuStore) Delete(_ context.Context, id int, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok || !m.InScope(category) {
		return fmt.Errorf("DeleteMenuItem: %w", ErrNotFound)
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryMenuStore) DeleteByName(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, m := range s.items {
		if m.Name == name {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

func clone(m model.MenuItem) model.MenuItem {
	if m.Image != nil {
		img := *m.Image
		m.Image = &img
	}
	return m
}
