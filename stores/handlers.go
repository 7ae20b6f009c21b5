package stores

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"shoplink/middleware"
	"shoplink/models"
	"shoplink/sheets"
	"shoplink/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Svc    *Service
	Sheets *sheets.Client
}

func NewHandler(svc *Service, sheetClient *sheets.Client) *Handler {
	return &Handler{Svc: svc, Sheets: sheetClient}
}

type createStoreRequest struct {
	Name     string                `json:"name"`
	Template string                `json:"template"`
	Whatsapp string                `json:"whatsapp"`
	Products []models.ProductDraft `json:"products"`
	SheetURL string                `json:"sheetUrl"`
}

// CreateStore handles the end of the setup wizard. When a sheet URL is given
// and no products were entered manually, the import adapter enriches the
// product list first; an import failure is warned, not fatal, so setup can
// continue with manual entry.
func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req createStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("CreateStore decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	var importWarnings []string
	if req.SheetURL != "" && len(req.Products) == 0 {
		drafts, err := h.Sheets.FetchProducts(ctx, req.SheetURL)
		if err != nil {
			log.Println("CreateStore sheet import error:", err)
			importWarnings = append(importWarnings,
				"Spreadsheet import failed; the store was created without imported products. Check sharing settings and column layout.")
		} else {
			req.Products = drafts
		}
	}

	result, err := h.Svc.CreateStore(ctx, CreateStoreInput{
		Name:     req.Name,
		Template: req.Template,
		Whatsapp: req.Whatsapp,
		Products: req.Products,
		SheetURL: req.SheetURL,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	ownerToken, err := middleware.NewOwnerToken(result.Store.StoreID)
	if err != nil {
		log.Println("CreateStore token error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate owner token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"ok":         true,
		"store":      result.Store,
		"ownerToken": ownerToken,
		"warnings":   append(result.Warnings, importWarnings...),
	})
}

// GetStore returns the store and its products. Missing or malformed ids are
// reported so the caller can redirect home instead of rendering undefined
// state.
func (h *Handler) GetStore(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, products, err := h.Svc.GetStore(ctx, ps.ByName("storeid"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":       true,
		"store":    store,
		"products": products,
	})
}

// Deploy promotes the store to its public state.
func (h *Handler) Deploy(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	result, err := h.Svc.Deploy(ctx, storeID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":     true,
		"status": result.Status,
		"url":    result.URL,
	})
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	var payload struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	store, err := h.Svc.UpdateTemplate(ctx, storeID, payload.Template)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "store": store})
}

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	product, err := h.Svc.AddProduct(ctx, storeID, draft)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "product": product})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	product, err := h.Svc.UpdateProduct(ctx, storeID, ps.ByName("productid"), draft)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "product": product})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	if err := h.Svc.DeleteProduct(ctx, storeID, ps.ByName("productid")); err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "status": "deleted"})
}

// authorizeOwner checks that the authenticated token manages this store.
func (h *Handler) authorizeOwner(w http.ResponseWriter, r *http.Request, storeID string) bool {
	if middleware.ManagedStoreID(r) != storeID {
		utils.RespondWithError(w, http.StatusForbidden, "Token does not manage this store")
		return false
	}
	return true
}

func respondStoreError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, ErrInvalidID):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid store id")
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Store not found")
	case errors.Is(err, ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, ErrDeployFailed):
		utils.RespondWithError(w, http.StatusBadGateway, "Deployment failed; try again")
	default:
		log.Println("store handler error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
