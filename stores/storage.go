package stores

import (
	"context"
	"sync"
	"time"

	"shoplink/models"
)

// Storage is the persistence port for stores, products and import
// connections: insert (single/batch), select by id, select by owning store,
// update by id. Production backs it with MongoDB; tests and dev mode use the
// in-memory implementation. The lifecycle service must not know which.
type Storage interface {
	InsertStore(ctx context.Context, store models.Store) error
	FindStore(ctx context.Context, storeID string) (models.Store, error)
	UpdateStore(ctx context.Context, storeID string, fields map[string]any) error

	InsertProducts(ctx context.Context, products []models.Product) error
	FindProductsByStore(ctx context.Context, storeID string) ([]models.Product, error)
	FindProduct(ctx context.Context, storeID, productID string) (models.Product, error)
	UpdateProduct(ctx context.Context, storeID, productID string, fields map[string]any) error
	DeleteProduct(ctx context.Context, storeID, productID string) error

	InsertConnection(ctx context.Context, conn models.ImportConnection) error
}

// MemoryStorage keeps everything in maps. Used by tests and when
// STORAGE=memory (local development without MongoDB).
type MemoryStorage struct {
	mu          sync.RWMutex
	stores      map[string]models.Store
	products    map[string][]models.Product // keyed by storeid, insertion order kept
	connections []models.ImportConnection
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		stores:   make(map[string]models.Store),
		products: make(map[string][]models.Product),
	}
}

func (m *MemoryStorage) InsertStore(_ context.Context, store models.Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores[store.StoreID] = store
	return nil
}

func (m *MemoryStorage) FindStore(_ context.Context, storeID string) (models.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	store, ok := m.stores[storeID]
	if !ok {
		return models.Store{}, ErrNotFound
	}
	return store, nil
}

func (m *MemoryStorage) UpdateStore(_ context.Context, storeID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.stores[storeID]
	if !ok {
		return ErrNotFound
	}
	applyStoreFields(&store, fields)
	m.stores[storeID] = store
	return nil
}

func (m *MemoryStorage) InsertProducts(_ context.Context, products []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range products {
		m.products[p.StoreID] = append(m.products[p.StoreID], p)
	}
	return nil
}

func (m *MemoryStorage) FindProductsByStore(_ context.Context, storeID string) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products[storeID]))
	copy(out, m.products[storeID])
	return out, nil
}

func (m *MemoryStorage) FindProduct(_ context.Context, storeID, productID string) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products[storeID] {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (m *MemoryStorage) UpdateProduct(_ context.Context, storeID, productID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.products[storeID]
	for i, p := range list {
		if p.ProductID == productID {
			applyProductFields(&p, fields)
			list[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

func (m *MemoryStorage) DeleteProduct(_ context.Context, storeID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.products[storeID]
	for i, p := range list {
		if p.ProductID == productID {
			m.products[storeID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (m *MemoryStorage) InsertConnection(_ context.Context, conn models.ImportConnection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections = append(m.connections, conn)
	return nil
}

func applyStoreFields(store *models.Store, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "status":
			store.Status, _ = v.(string)
		case "publicUrl":
			store.PublicURL, _ = v.(string)
		case "template":
			store.Template, _ = v.(string)
		case "updatedAt":
			if t, ok := v.(time.Time); ok {
				store.UpdatedAt = t
			}
		}
	}
}

func applyProductFields(p *models.Product, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			p.Name, _ = v.(string)
		case "price":
			p.Price, _ = v.(float64)
		case "description":
			p.Description, _ = v.(string)
		case "image":
			p.Image, _ = v.(string)
		case "updatedAt":
			if t, ok := v.(time.Time); ok {
				p.UpdatedAt = t
			}
		}
	}
}
