package carts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"shoplink/models"
	"shoplink/rdx"

	"github.com/redis/go-redis/v9"
)

// Carts are abandoned carts after a day.
const cartTTL = 24 * time.Hour

// Backend stores session carts. Redis in production, in-memory without it.
type Backend interface {
	Items(ctx context.Context, storeID, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, storeID, sessionID string, items []models.CartItem) error
	Clear(ctx context.Context, storeID, sessionID string) error
}

func cartKey(storeID, sessionID string) string {
	return fmt.Sprintf("cart:%s:%s", storeID, sessionID)
}

type RedisBackend struct{}

func NewRedisBackend() *RedisBackend {
	return &RedisBackend{}
}

func (b *RedisBackend) Items(ctx context.Context, storeID, sessionID string) ([]models.CartItem, error) {
	raw, err := rdx.RdxGet(cartKey(storeID, sessionID))
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *RedisBackend) Save(ctx context.Context, storeID, sessionID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return rdx.RdxSet(cartKey(storeID, sessionID), string(raw), cartTTL)
}

func (b *RedisBackend) Clear(ctx context.Context, storeID, sessionID string) error {
	return rdx.RdxDel(cartKey(storeID, sessionID))
}

// MemoryBackend holds carts in a map. Single-process only.
type MemoryBackend struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{carts: make(map[string][]models.CartItem)}
}

func (b *MemoryBackend) Items(_ context.Context, storeID, sessionID string) ([]models.CartItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	items := b.carts[cartKey(storeID, sessionID)]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (b *MemoryBackend) Save(_ context.Context, storeID, sessionID string, items []models.CartItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.carts[cartKey(storeID, sessionID)] = items
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context, storeID, sessionID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.carts, cartKey(storeID, sessionID))
	return nil
}
