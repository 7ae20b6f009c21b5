package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"shoplink/middleware"
	"shoplink/models"
	"shoplink/rdx"
	"shoplink/stores"
	"shoplink/utils"

	"github.com/julienschmidt/httprouter"
)

const viewCacheTTL = 5 * time.Minute

type Handler struct {
	Stores *stores.Service
	Domain string
}

func NewHandler(storeSvc *stores.Service, domain string) *Handler {
	return &Handler{Stores: storeSvc, Domain: domain}
}

// GetCatalogView serves the display model for a store page. Owner requests
// (valid owner token for this store) get edit affordances and skip the
// cache. Public views are cached keyed by the store's update stamp, so any
// mutation naturally produces a fresh entry.
func (h *Handler) GetCatalogView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	isOwner := middleware.ManagedStoreID(r) == storeID

	store, products, err := h.Stores.GetStore(ctx, storeID)
	if err != nil {
		respondRenderError(w, err)
		return
	}

	if !isOwner {
		cacheKey := fmt.Sprintf("catalog:%s:%d", store.StoreID, store.UpdatedAt.UnixNano())
		if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}

		view := BuildCatalog(store, products, false)
		if raw, err := json.Marshal(view); err == nil {
			if err := rdx.RdxSet(cacheKey, string(raw), viewCacheTTL); err != nil {
				log.Println("catalog view cache error:", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write(raw)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, view)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, BuildCatalog(store, products, true))
}

// CatalogPDF serves the printable catalog sheet.
func (h *Handler) CatalogPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	store, products, err := h.Stores.GetStore(ctx, ps.ByName("storeid"))
	if err != nil {
		respondRenderError(w, err)
		return
	}

	storeURL := store.PublicURL
	if store.Status != models.StatusDeployed || storeURL == "" {
		storeURL = fmt.Sprintf("https://%s/%s", h.Domain, store.StoreID)
	}

	pdfBytes, err := BuildCatalogPDF(store, products, storeURL)
	if err != nil {
		log.Println("catalog pdf error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate catalog PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", utils.Slugify(store.Name)+"-catalog.pdf"))
	w.Write(pdfBytes)
}

func respondRenderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stores.ErrNotFound), errors.Is(err, stores.ErrInvalidID):
		utils.RespondWithError(w, http.StatusNotFound, "Store not found")
	default:
		log.Println("render error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
