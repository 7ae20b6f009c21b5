package carts

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"shoplink/models"
)

var ErrMissingCustomer = errors.New("customer name and phone are required")

// OrderMessage renders the cart as the plain-text WhatsApp order message:
// one line per item, then the total, addressed from the customer.
func OrderMessage(items []models.CartItem, customerName, customerPhone string) string {
	var lines []string
	for _, it := range items {
		lineTotal := float64(it.Quantity) * it.Price
		lines = append(lines, fmt.Sprintf("%s x%d - $%.2f", it.Name, it.Quantity, lineTotal))
	}

	return fmt.Sprintf("New Order!\n\nCustomer: %s\nPhone: %s\n\nOrder Details:\n%s\n\nTotal: $%.2f",
		customerName, customerPhone, strings.Join(lines, "\n"), Total(items))
}

// WhatsAppURL builds the wa.me deep link that carries the order off-system.
// wa.me wants bare E.164 digits, no plus.
func WhatsAppURL(whatsapp, message string) string {
	digits := strings.TrimPrefix(whatsapp, "+")
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, encoded)
}

// PlaceOrder formats the cart into an order hand-off for the store's
// WhatsApp number and clears the cart. This is the only order submission
// mechanism; nothing is recorded server-side.
func (c *Cart) PlaceOrder(ctx context.Context, store models.Store, sessionID, customerName, customerPhone string) (models.OrderHandoff, error) {
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(customerPhone) == "" {
		return models.OrderHandoff{}, ErrMissingCustomer
	}

	items, err := c.backend.Items(ctx, store.StoreID, sessionID)
	if err != nil {
		return models.OrderHandoff{}, err
	}
	if len(items) == 0 {
		return models.OrderHandoff{}, ErrEmptyCart
	}

	message := OrderMessage(items, customerName, customerPhone)
	handoff := models.OrderHandoff{
		Message: message,
		WaURL:   WhatsAppURL(store.Whatsapp, message),
		Total:   Total(items),
	}

	if err := c.backend.Clear(ctx, store.StoreID, sessionID); err != nil {
		return models.OrderHandoff{}, err
	}
	return handoff, nil
}
