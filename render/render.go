package render

import (
	"fmt"

	"shoplink/models"
	"shoplink/templates"
)

// HeaderView is the styled banner block at the top of a catalog page.
type HeaderView struct {
	StoreName string          `json:"storeName"`
	Template  string          `json:"template"`
	Style     templates.Style `json:"style"`
	Status    string          `json:"status"`
	PublicURL string          `json:"publicUrl,omitempty"`
}

// ProductCardView is one card in the catalog grid, with its add-to-cart
// payload precomputed.
type ProductCardView struct {
	ProductID   string  `json:"productid"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"priceLabel"`
}

// OwnerView carries the edit affordances only the store owner sees.
type OwnerView struct {
	Templates []templates.Template `json:"templates"`
	CanDeploy bool                 `json:"canDeploy"`
	CanEdit   bool                 `json:"canEdit"`
}

// CatalogView is the full display model for one store's catalog page.
type CatalogView struct {
	Header   HeaderView        `json:"header"`
	Products []ProductCardView `json:"products"`
	Owner    *OwnerView        `json:"owner,omitempty"`
}

// BuildCatalog assembles the catalog view. Template resolution is a pure
// style lookup; an unrecognized stored value renders as minimal rather than
// failing.
func BuildCatalog(store models.Store, products []models.Product, isOwner bool) CatalogView {
	tpl, _ := templates.Parse(store.Template)

	cards := make([]ProductCardView, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCardView{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Price:       p.Price,
			PriceLabel:  fmt.Sprintf("$%.2f", p.Price),
		})
	}

	view := CatalogView{
		Header: HeaderView{
			StoreName: store.Name,
			Template:  string(tpl),
			Style:     templates.Resolve(tpl),
			Status:    store.Status,
			PublicURL: store.PublicURL,
		},
		Products: cards,
	}

	if isOwner {
		view.Owner = &OwnerView{
			Templates: templates.All(),
			CanDeploy: store.Status != models.StatusDeployed,
			CanEdit:   true,
		}
	}
	return view
}
