package models

import "time"

// CartItem is a single line in a shopper's session cart. Carts are ephemeral
// and scoped to one store and one session; they are never shared.
type CartItem struct {
	ProductID string    `json:"productid" bson:"productid"`
	Name      string    `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"` // unit price
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// OrderHandoff is the result of placing an order: the formatted message and
// the WhatsApp deep link that carries it off-system. There is no server-side
// order record.
type OrderHandoff struct {
	Message string  `json:"message"`
	WaURL   string  `json:"waUrl"`
	Total   float64 `json:"total"`
}
