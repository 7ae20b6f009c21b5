package stores

import (
	"context"
	"fmt"
	"log"
	"time"

	"shoplink/models"
	"shoplink/templates"
	"shoplink/utils"

	"github.com/google/uuid"
)

// Products are written in chunks of this size rather than one bulk insert,
// to bound request size against the backend.
const productBatchSize = 10

const placeholderImage = "/placeholder.svg"
const untitledProduct = "Untitled Product"

// Service is the only component allowed to create, look up, or transition a
// store.
type Service struct {
	storage Storage
	domain  string
}

func NewService(storage Storage, domain string) *Service {
	return &Service{storage: storage, domain: domain}
}

type CreateStoreInput struct {
	Name     string
	Template string
	Whatsapp string
	Products []models.ProductDraft
	SheetURL string
}

// CreateStoreResult carries the committed store plus any non-fatal warnings
// from the best-effort product and connection writes.
type CreateStoreResult struct {
	Store    models.Store
	Warnings []string
}

// CreateStore validates input, commits the store record, then writes
// products in sequential batches and the import connection best effort.
// Product or connection failures degrade to warnings: the store is created
// even if enrichment partially fails, and the id is returned regardless.
func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (CreateStoreResult, error) {
	if in.Name == "" {
		return CreateStoreResult{}, &ValidationError{Field: "name", Reason: "store name is required"}
	}
	whatsapp := utils.NormalizeWhatsapp(in.Whatsapp)
	if whatsapp == "" || whatsapp == "+" {
		return CreateStoreResult{}, &ValidationError{Field: "whatsapp", Reason: "WhatsApp number is required"}
	}

	// Unknown template values are coerced to the default rather than
	// rejected; the wizard only offers known ones anyway.
	tpl, _ := templates.Parse(in.Template)

	now := time.Now()
	store := models.Store{
		StoreID:   utils.GetUUID(),
		Name:      in.Name,
		Template:  string(tpl),
		Whatsapp:  whatsapp,
		Status:    models.StatusPreview,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.InsertStore(ctx, store); err != nil {
		return CreateStoreResult{}, fmt.Errorf("store creation failed: %w", err)
	}

	result := CreateStoreResult{Store: store}

	products := make([]models.Product, 0, len(in.Products))
	for _, draft := range in.Products {
		products = append(products, normalizeDraft(draft, store.StoreID, now))
	}
	for start := 0; start < len(products); start += productBatchSize {
		end := start + productBatchSize
		if end > len(products) {
			end = len(products)
		}
		if err := s.storage.InsertProducts(ctx, products[start:end]); err != nil {
			log.Printf("CreateStore: product batch %d-%d failed for store %s: %v", start, end, store.StoreID, err)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Some products may not have been saved (rows %d-%d)", start+1, end))
		}
	}

	if in.SheetURL != "" {
		conn := models.ImportConnection{
			StoreID:   store.StoreID,
			SheetURL:  in.SheetURL,
			SheetType: "google",
			Template:  store.Template,
			Whatsapp:  store.Whatsapp,
			CreatedAt: now,
		}
		if err := s.storage.InsertConnection(ctx, conn); err != nil {
			log.Printf("CreateStore: connection record failed for store %s: %v", store.StoreID, err)
			result.Warnings = append(result.Warnings, "Spreadsheet connection details may not have been saved")
		}
	}

	return result, nil
}

// GetStore returns the store and all of its products. A malformed id fails
// with ErrInvalidID before the lookup; a missing store fails with
// ErrNotFound. Neither is ever a silent nil.
func (s *Service) GetStore(ctx context.Context, storeID string) (models.Store, []models.Product, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return models.Store{}, nil, ErrInvalidID
	}

	store, err := s.storage.FindStore(ctx, storeID)
	if err != nil {
		return models.Store{}, nil, err
	}

	products, err := s.storage.FindProductsByStore(ctx, storeID)
	if err != nil {
		return models.Store{}, nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return store, products, nil
}

// Deploy flips the store to deployed and derives its public URL from the
// name slug. Safe to call again on an already-deployed store: the slug is
// recomputed from the same name, and status never regresses.
func (s *Service) Deploy(ctx context.Context, storeID string) (models.DeployResult, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return models.DeployResult{}, ErrInvalidID
	}

	store, err := s.storage.FindStore(ctx, storeID)
	if err != nil {
		return models.DeployResult{}, err
	}

	slug := utils.Slugify(store.Name)
	if slug == "" {
		// name with no sluggable characters; the id is at least unique
		slug = store.StoreID
	}
	publicURL := fmt.Sprintf("https://%s.%s", slug, s.domain)
	err = s.storage.UpdateStore(ctx, storeID, map[string]any{
		"status":    models.StatusDeployed,
		"publicUrl": publicURL,
		"updatedAt": time.Now(),
	})
	if err != nil {
		return models.DeployResult{}, fmt.Errorf("%w: %v", ErrDeployFailed, err)
	}

	return models.DeployResult{Status: models.StatusDeployed, URL: publicURL}, nil
}

// UpdateTemplate switches the store's visual template. Unknown values are
// rejected here, unlike at creation, because the caller is naming one
// explicitly.
func (s *Service) UpdateTemplate(ctx context.Context, storeID, template string) (models.Store, error) {
	tpl, ok := templates.Parse(template)
	if !ok {
		return models.Store{}, &ValidationError{Field: "template", Reason: "unknown template"}
	}

	store, _, err := s.GetStore(ctx, storeID)
	if err != nil {
		return models.Store{}, err
	}

	now := time.Now()
	err = s.storage.UpdateStore(ctx, storeID, map[string]any{
		"template":  string(tpl),
		"updatedAt": now,
	})
	if err != nil {
		return models.Store{}, err
	}
	store.Template = string(tpl)
	store.UpdatedAt = now
	return store, nil
}

// touchStore bumps the store's update stamp after a product mutation, so
// cached public catalog views roll over to a fresh key.
func (s *Service) touchStore(ctx context.Context, storeID string, now time.Time) {
	if err := s.storage.UpdateStore(ctx, storeID, map[string]any{"updatedAt": now}); err != nil {
		log.Printf("touchStore %s: %v", storeID, err)
	}
}

// AddProduct attaches one more product to an existing store.
func (s *Service) AddProduct(ctx context.Context, storeID string, draft models.ProductDraft) (models.Product, error) {
	store, _, err := s.GetStore(ctx, storeID)
	if err != nil {
		return models.Product{}, err
	}

	now := time.Now()
	product := normalizeDraft(draft, store.StoreID, now)
	if err := s.storage.InsertProducts(ctx, []models.Product{product}); err != nil {
		return models.Product{}, fmt.Errorf("failed to save product: %w", err)
	}
	s.touchStore(ctx, storeID, now)
	return product, nil
}

// UpdateProduct edits an owner's product. Edits take effect immediately on
// the public catalog; there is no frozen deployed snapshot.
func (s *Service) UpdateProduct(ctx context.Context, storeID, productID string, draft models.ProductDraft) (models.Product, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return models.Product{}, ErrInvalidID
	}

	product, err := s.storage.FindProduct(ctx, storeID, productID)
	if err != nil {
		return models.Product{}, err
	}

	if draft.Name != "" {
		product.Name = draft.Name
	}
	if draft.Price != nil {
		product.Price = utils.ParsePrice(draft.Price)
	}
	if draft.Description != "" {
		product.Description = draft.Description
	}
	if draft.Image != "" {
		product.Image = draft.Image
	}
	product.UpdatedAt = time.Now()

	err = s.storage.UpdateProduct(ctx, storeID, productID, map[string]any{
		"name":        product.Name,
		"price":       product.Price,
		"description": product.Description,
		"image":       product.Image,
		"updatedAt":   product.UpdatedAt,
	})
	if err != nil {
		return models.Product{}, err
	}
	s.touchStore(ctx, storeID, product.UpdatedAt)
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, storeID, productID string) error {
	if _, err := uuid.Parse(storeID); err != nil {
		return ErrInvalidID
	}
	if err := s.storage.DeleteProduct(ctx, storeID, productID); err != nil {
		return err
	}
	s.touchStore(ctx, storeID, time.Now())
	return nil
}

// GetProduct returns a single product of a store.
func (s *Service) GetProduct(ctx context.Context, storeID, productID string) (models.Product, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return models.Product{}, ErrInvalidID
	}
	return s.storage.FindProduct(ctx, storeID, productID)
}

func normalizeDraft(draft models.ProductDraft, storeID string, now time.Time) models.Product {
	name := draft.Name
	if name == "" {
		name = untitledProduct
	}
	image := draft.Image
	if image == "" {
		image = placeholderImage
	}
	return models.Product{
		ProductID:   utils.GetUUID(),
		StoreID:     storeID,
		Name:        name,
		Price:       utils.ParsePrice(draft.Price),
		Description: draft.Description,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
