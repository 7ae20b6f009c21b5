package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"shoplink/models"

	"github.com/google/uuid"
)

func newTestService() *Service {
	return NewService(NewMemoryStorage(), "shop.link")
}

func TestCreateAndGetStore(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.CreateStore(ctx, CreateStoreInput{
		Name:     "Demo Store",
		Template: "minimal",
		Whatsapp: "+1 234 567 8900",
		Products: []models.ProductDraft{{Name: "Widget", Price: "9.99"}},
	})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if _, err := uuid.Parse(result.Store.StoreID); err != nil {
		t.Fatalf("store id %q is not a UUID", result.Store.StoreID)
	}

	store, products, err := svc.GetStore(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("GetStore failed: %v", err)
	}
	if store.Status != models.StatusPreview {
		t.Errorf("status = %q, want preview", store.Status)
	}
	if store.Whatsapp != "+12345678900" {
		t.Errorf("whatsapp = %q, want +12345678900", store.Whatsapp)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Name != "Widget" || products[0].Price != 9.99 {
		t.Errorf("product = %+v", products[0])
	}
	if products[0].StoreID != store.StoreID {
		t.Errorf("product storeid = %q, want %q", products[0].StoreID, store.StoreID)
	}
}

func TestCreateStoreValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	var vErr *ValidationError
	_, err := svc.CreateStore(ctx, CreateStoreInput{Whatsapp: "+123"})
	if !errors.As(err, &vErr) {
		t.Fatalf("missing name: got %v, want ValidationError", err)
	}

	_, err = svc.CreateStore(ctx, CreateStoreInput{Name: "Shop"})
	if !errors.As(err, &vErr) {
		t.Fatalf("missing whatsapp: got %v, want ValidationError", err)
	}

	// a number that normalizes to nothing is as bad as none at all
	_, err = svc.CreateStore(ctx, CreateStoreInput{Name: "Shop", Whatsapp: "()- "})
	if !errors.As(err, &vErr) {
		t.Fatalf("unusable whatsapp: got %v, want ValidationError", err)
	}
}

func TestCreateStoreDraftDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.CreateStore(ctx, CreateStoreInput{
		Name:     "Defaults",
		Whatsapp: "+490001",
		Products: []models.ProductDraft{{}},
	})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	if result.Store.Template != "minimal" {
		t.Errorf("template defaulted to %q, want minimal", result.Store.Template)
	}

	_, products, err := svc.GetStore(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("GetStore failed: %v", err)
	}
	p := products[0]
	if p.Name != "Untitled Product" || p.Price != 0 || p.Image != "/placeholder.svg" || p.Description != "" {
		t.Errorf("draft defaults not applied: %+v", p)
	}
}

func TestGetStoreNotFound(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.GetStore(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestGetStoreInvalidID(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.GetStore(context.Background(), "not-a-real-id")
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
}

func TestDeploy(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.CreateStore(ctx, CreateStoreInput{Name: "Demo Store", Whatsapp: "+12345678900"})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}

	deployed, err := svc.Deploy(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}
	if deployed.Status != models.StatusDeployed {
		t.Errorf("status = %q, want deployed", deployed.Status)
	}
	if deployed.URL != "https://demo-store.shop.link" {
		t.Errorf("url = %q, want https://demo-store.shop.link", deployed.URL)
	}

	store, _, err := svc.GetStore(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("GetStore failed: %v", err)
	}
	if store.Status != models.StatusDeployed || store.PublicURL != deployed.URL {
		t.Errorf("store not persisted as deployed: %+v", store)
	}
}

func TestDeployIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, _ := svc.CreateStore(ctx, CreateStoreInput{Name: "Twice Shop", Whatsapp: "+12345678900"})

	first, err := svc.Deploy(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("first deploy failed: %v", err)
	}
	second, err := svc.Deploy(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("second deploy failed: %v", err)
	}
	if second.URL != first.URL {
		t.Errorf("redeploy URL changed: %q then %q", first.URL, second.URL)
	}

	store, _, _ := svc.GetStore(ctx, result.Store.StoreID)
	if store.Status != models.StatusDeployed {
		t.Errorf("status regressed to %q", store.Status)
	}
}

func TestDeployUnsluggableName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.CreateStore(ctx, CreateStoreInput{Name: "日本の店", Whatsapp: "+12345678900"})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}

	deployed, err := svc.Deploy(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}
	want := "https://" + result.Store.StoreID + ".shop.link"
	if deployed.URL != want {
		t.Fatalf("url = %q, want %q", deployed.URL, want)
	}
}

func TestDeployNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Deploy(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// failingStorage makes product and connection writes fail while leaving the
// store write intact.
type failingStorage struct {
	*MemoryStorage
}

func (f *failingStorage) InsertProducts(ctx context.Context, products []models.Product) error {
	return errors.New("backend rejected batch")
}

func (f *failingStorage) InsertConnection(ctx context.Context, conn models.ImportConnection) error {
	return errors.New("backend rejected connection")
}

func TestCreateStoreBestEffort(t *testing.T) {
	svc := NewService(&failingStorage{NewMemoryStorage()}, "shop.link")
	ctx := context.Background()

	// 25 drafts: three batches of 10/10/5, each failing
	drafts := make([]models.ProductDraft, 25)
	result, err := svc.CreateStore(ctx, CreateStoreInput{
		Name:     "Partial",
		Whatsapp: "+12345678900",
		Products: drafts,
		SheetURL: "https://docs.google.com/spreadsheets/d/abc123/edit",
	})
	if err != nil {
		t.Fatalf("CreateStore must not fail on product/connection errors: %v", err)
	}
	if result.Store.StoreID == "" {
		t.Fatal("store id missing despite committed store record")
	}
	if len(result.Warnings) != 4 {
		t.Fatalf("got %d warnings, want 4 (3 batches + connection): %v", len(result.Warnings), result.Warnings)
	}

	// the store itself is still there and loadable
	if _, _, err := svc.GetStore(ctx, result.Store.StoreID); err != nil {
		t.Fatalf("store should exist after partial failure: %v", err)
	}
}

func TestUpdateTemplate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, _ := svc.CreateStore(ctx, CreateStoreInput{Name: "Style Shop", Whatsapp: "+12345678900"})

	store, err := svc.UpdateTemplate(ctx, result.Store.StoreID, "luxury")
	if err != nil {
		t.Fatalf("UpdateTemplate failed: %v", err)
	}
	if store.Template != "luxury" {
		t.Errorf("template = %q, want luxury", store.Template)
	}

	var vErr *ValidationError
	if _, err := svc.UpdateTemplate(ctx, result.Store.StoreID, "holographic"); !errors.As(err, &vErr) {
		t.Fatalf("unknown template: got %v, want ValidationError", err)
	}
}

func TestProductLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, _ := svc.CreateStore(ctx, CreateStoreInput{Name: "CRUD Shop", Whatsapp: "+12345678900"})
	storeID := result.Store.StoreID

	added, err := svc.AddProduct(ctx, storeID, models.ProductDraft{Name: "Mug", Price: 4})
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}

	updated, err := svc.UpdateProduct(ctx, storeID, added.ProductID, models.ProductDraft{Price: "5.25", Description: "Ceramic"})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if updated.Name != "Mug" || updated.Price != 5.25 || updated.Description != "Ceramic" {
		t.Errorf("update merged wrong: %+v", updated)
	}

	if err := svc.DeleteProduct(ctx, storeID, added.ProductID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := svc.UpdateProduct(ctx, storeID, added.ProductID, models.ProductDraft{Name: "Ghost"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("got %v, want ErrProductNotFound", err)
	}

	_, products, _ := svc.GetStore(ctx, storeID)
	if len(products) != 0 {
		t.Errorf("products left after delete: %v", products)
	}
}

// Cached public catalog views are keyed by the store's update stamp, so
// every product mutation must move it forward.
func TestProductMutationsTouchStore(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, _ := svc.CreateStore(ctx, CreateStoreInput{Name: "Touch Shop", Whatsapp: "+12345678900"})
	storeID := result.Store.StoreID

	store, _, _ := svc.GetStore(ctx, storeID)
	stamp := store.UpdatedAt

	time.Sleep(time.Millisecond)
	added, err := svc.AddProduct(ctx, storeID, models.ProductDraft{Name: "Mug", Price: 4})
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	store, _, _ = svc.GetStore(ctx, storeID)
	if !store.UpdatedAt.After(stamp) {
		t.Fatal("adding a product must bump the store's update stamp")
	}
	stamp = store.UpdatedAt

	time.Sleep(time.Millisecond)
	if _, err := svc.UpdateProduct(ctx, storeID, added.ProductID, models.ProductDraft{Name: "Cup"}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	store, _, _ = svc.GetStore(ctx, storeID)
	if !store.UpdatedAt.After(stamp) {
		t.Fatal("editing a product must bump the store's update stamp")
	}
	stamp = store.UpdatedAt

	time.Sleep(time.Millisecond)
	if err := svc.DeleteProduct(ctx, storeID, added.ProductID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	store, _, _ = svc.GetStore(ctx, storeID)
	if !store.UpdatedAt.After(stamp) {
		t.Fatal("deleting a product must bump the store's update stamp")
	}
}

func TestGetStoreEmptyProductsNonNil(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, _ := svc.CreateStore(ctx, CreateStoreInput{Name: "Empty Shop", Whatsapp: "+12345678900"})
	_, products, err := svc.GetStore(ctx, result.Store.StoreID)
	if err != nil {
		t.Fatalf("GetStore failed: %v", err)
	}
	if products == nil {
		t.Fatal("products must be an empty list, not nil")
	}
}
