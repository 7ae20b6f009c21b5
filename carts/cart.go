package carts

import (
	"context"
	"errors"
	"math"
	"time"

	"shoplink/models"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrBadCartItem = errors.New("missing or invalid cart item fields")
)

// Cart manages ephemeral, session-scoped baskets. It never talks to the
// store lifecycle service.
type Cart struct {
	backend Backend
}

func NewCart(backend Backend) *Cart {
	return &Cart{backend: backend}
}

// Add appends the item, or bumps quantity when the same product is already
// in the cart. Insertion order is preserved for display.
func (c *Cart) Add(ctx context.Context, storeID, sessionID string, item models.CartItem) ([]models.CartItem, error) {
	if item.ProductID == "" || item.Name == "" || item.Price < 0 {
		return nil, ErrBadCartItem
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.AddedAt = time.Now()

	items, err := c.backend.Items(ctx, storeID, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := c.backend.Save(ctx, storeID, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the whole line item, regardless of quantity.
func (c *Cart) Remove(ctx context.Context, storeID, sessionID, productID string) ([]models.CartItem, error) {
	items, err := c.backend.Items(ctx, storeID, sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}

	if err := c.backend.Save(ctx, storeID, sessionID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (c *Cart) Items(ctx context.Context, storeID, sessionID string) ([]models.CartItem, error) {
	return c.backend.Items(ctx, storeID, sessionID)
}

// Total sums price*quantity over all items, rounded to cents so it always
// matches the itemized breakdown.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return math.Round(sum*100) / 100
}
