package models

import "time"

// Store lifecycle states. A store is created in preview and moves to
// deployed exactly once; there is no path back.
const (
	StatusPreview  = "preview"
	StatusDeployed = "deployed"
)

// Store is the top-level tenant: one merchant's catalog and configuration.
type Store struct {
	StoreID   string    `json:"storeid" bson:"storeid"`
	Name      string    `json:"name" bson:"name"`
	Template  string    `json:"template" bson:"template"`
	Whatsapp  string    `json:"whatsapp" bson:"whatsapp"` // normalized: leading + and digits only
	Status    string    `json:"status" bson:"status"`
	PublicURL string    `json:"publicUrl,omitempty" bson:"publicUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Product belongs to exactly one store.
type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	StoreID     string    `json:"storeid" bson:"storeid"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductDraft is an unpersisted product as it arrives from the setup wizard
// or the sheet importer. Price is loose on purpose: forms and sheets send it
// as either a number or a string.
type ProductDraft struct {
	Name        string `json:"name"`
	Price       any    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ImportConnection links a store to the spreadsheet it was seeded from.
// Written once at setup time, best effort.
type ImportConnection struct {
	StoreID   string    `json:"storeid" bson:"storeid"`
	SheetURL  string    `json:"sheetUrl" bson:"sheetUrl"`
	SheetType string    `json:"sheetType" bson:"sheetType"`
	Template  string    `json:"template" bson:"template"`
	Whatsapp  string    `json:"whatsapp" bson:"whatsapp"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// DeployResult is what deploy hands back to the owner.
type DeployResult struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}
