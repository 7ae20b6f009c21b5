package stores

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shoplink/models"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// StoreQR serves a PNG QR code pointing at the store. Deployed stores encode
// their public URL; preview stores encode the catalog page so owners can
// test on a phone before deploying.
func (h *Handler) StoreQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, _, err := h.Svc.GetStore(ctx, ps.ByName("storeid"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	target := store.PublicURL
	if store.Status != models.StatusDeployed || target == "" {
		target = fmt.Sprintf("https://%s/%s", h.Svc.domain, store.StoreID)
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(png)))
	w.Write(png)
}
