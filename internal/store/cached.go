package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taste-of-aloha/internal/cache"
	"taste-of-aloha/internal/model"
	"taste-of-aloha/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const generationKey = "menu:generation"

var (
	// fillTimeout 限制背景回填快取的時間
	fillTimeout = 2 * time.Second
	// invalidateTimeout 限制寫入後遞增世代的時間
	invalidateTimeout = 2 * time.Second
)

// CachedMenuStore 在 MenuStore 前加上 Redis 快取
//
// 所有 key 都帶有世代編號，任何寫入成功後遞增世代，舊 key 由 TTL 自然淘汰。
// 讀取未命中時由 worker pool 在背景回填。
type CachedMenuStore struct {
	next  MenuStore
	cache cache.Cache
	pool  worker.Pool
	ttl   time.Duration
	log   logrus.FieldLogger
}

func NewCachedMenuStore(next MenuStore, c cache.Cache, pool worker.Pool, ttl time.Duration, log logrus.FieldLogger) *CachedMenuStore {
	return &CachedMenuStore{
		next:  next,
		cache: c,
		pool:  pool,
		ttl:   ttl,
		log:   log.WithField("component", "menu_cache"),
	}
}

func (s *CachedMenuStore) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	gen, ok := s.generation(ctx)
	if !ok {
		return s.next.List(ctx, category)
	}
	key := fmt.Sprintf("menu:g%d:list:%s", gen, category)

	var items []model.MenuItem
	if s.lookup(ctx, key, &items) {
		return items, nil
	}

	items, err := s.next.List(ctx, category)
	if err != nil {
		return nil, err
	}
	s.fill(key, items)
	return items, nil
}

func (s *CachedMenuStore) Get(ctx context.Context, id int, category string) (*model.MenuItem, error) {
	gen, ok := s.generation(ctx)
	if !ok {
		return s.next.Get(ctx, id, category)
	}
	key := fmt.Sprintf("menu:g%d:item:%d:%s", gen, id, category)

	var item model.MenuItem
	if s.lookup(ctx, key, &item) {
		return &item, nil
	}

	m, err := s.next.Get(ctx, id, category)
	if err != nil {
		return nil, err
	}
	s.fill(key, m)
	return m, nil
}

func (s *CachedMenuStore) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	m, err := s.next.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return m, nil
}

func (s *CachedMenuStore) Update(ctx context.Context, id int, category string, p model.MenuItemPatch) (*model.MenuItem, error) {
	m, err := s.next.Update(ctx, id, category, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return m, nil
}

func (s *CachedMenuStore) Delete(ctx context.Context, id int, category string) error {
	if err := s.next.Delete(ctx, id, category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedMenuStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	n, err := s.next.DeleteByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.invalidate(ctx)
	}
	return n, nil
}

// generation 讀取目前世代；Redis 無法使用時回傳 false，呼叫端直接讀資料庫
func (s *CachedMenuStore) generation(ctx context.Context) (int64, bool) {
	gen, err := s.cache.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		s.log.WithError(err).Warn("read cache generation")
		return 0, false
	}
	return gen, true
}

func (s *CachedMenuStore) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).WithField("key", key).Warn("cache get")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache decode")
		return false
	}
	return true
}

func (s *CachedMenuStore) fill(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache encode")
		return
	}
	submitted := s.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), fillTimeout)
		defer cancel()
		if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("cache set")
		}
	})
	if !submitted {
		s.log.WithField("key", key).Debug("cache fill skipped")
	}
}

// invalidate 在寫入已提交後執行，不受請求取消影響
func (s *CachedMenuStore) invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()
	if err := s.cache.Incr(ctx, generationKey).Err(); err != nil {
		s.log.WithError(err).Error("bump cache generation")
	}
}
