package render

import (
	"testing"

	"shoplink/models"
	"shoplink/templates"
)

func TestBuildCatalogPublic(t *testing.T) {
	store := models.Store{StoreID: "s1", Name: "Demo", Template: "luxury", Status: models.StatusDeployed, PublicURL: "https://demo.shop.link"}
	products := []models.Product{
		{ProductID: "p1", Name: "Widget", Price: 9.9, Image: "/placeholder.svg"},
	}

	view := BuildCatalog(store, products, false)

	if view.Owner != nil {
		t.Fatal("public view must not carry owner affordances")
	}
	if view.Header.Template != "luxury" || view.Header.Style != templates.Resolve(templates.Luxury) {
		t.Errorf("header styled wrong: %+v", view.Header)
	}
	if view.Header.PublicURL != "https://demo.shop.link" {
		t.Errorf("publicUrl = %q", view.Header.PublicURL)
	}
	if len(view.Products) != 1 {
		t.Fatalf("got %d cards", len(view.Products))
	}
	if view.Products[0].PriceLabel != "$9.90" {
		t.Errorf("price label = %q, want $9.90", view.Products[0].PriceLabel)
	}
}

func TestBuildCatalogUnknownTemplateFallsBack(t *testing.T) {
	store := models.Store{StoreID: "s1", Name: "Demo", Template: "totally-unknown", Status: models.StatusPreview}

	view := BuildCatalog(store, nil, false)

	if view.Header.Template != string(templates.Default) {
		t.Errorf("template = %q, want %q", view.Header.Template, templates.Default)
	}
	if view.Header.Style != templates.Resolve(templates.Default) {
		t.Error("unknown template must get the default style, not blank")
	}
	if view.Products == nil {
		t.Error("products must be an empty list, not nil")
	}
}

func TestBuildCatalogOwnerAffordances(t *testing.T) {
	store := models.Store{StoreID: "s1", Name: "Demo", Template: "minimal", Status: models.StatusPreview}

	view := BuildCatalog(store, nil, true)
	if view.Owner == nil {
		t.Fatal("owner view missing")
	}
	if !view.Owner.CanDeploy {
		t.Error("preview store must be deployable")
	}
	if len(view.Owner.Templates) != len(templates.All()) {
		t.Errorf("template switcher lists %d templates", len(view.Owner.Templates))
	}

	store.Status = models.StatusDeployed
	view = BuildCatalog(store, nil, true)
	if view.Owner.CanDeploy {
		t.Error("deployed store must not offer deploy again")
	}
	if !view.Owner.CanEdit {
		t.Error("owner keeps edit affordances after deploy")
	}
}
