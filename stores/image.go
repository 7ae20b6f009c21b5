package stores

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"shoplink/models"
	"shoplink/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var productUploadPath = "./static/productpic"

// UploadProductImage accepts a multipart image for a product, stores it as a
// JPEG under static/productpic with a 300px thumbnail, and points the
// product's image field at it.
func (h *Handler) UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	storeID := ps.ByName("storeid")
	productID := ps.ByName("productid")
	if !h.authorizeOwner(w, r, storeID) {
		return
	}

	// confirm the product exists before anything touches disk
	if _, err := h.Svc.GetProduct(ctx, storeID, productID); err != nil {
		respondStoreError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/webp":
	default:
		http.Error(w, "Unsupported image type. Only JPG, PNG and WEBP are allowed.", http.StatusUnsupportedMediaType)
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "Failed to decode image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(productUploadPath); err != nil {
		http.Error(w, "Error saving image", http.StatusInternalServerError)
		return
	}

	filename := productID + ".jpg"
	if err := imaging.Save(img, filepath.Join(productUploadPath, filename)); err != nil {
		http.Error(w, "Error saving image: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := utils.CreateThumb(productID, productUploadPath, ".jpg", 300); err != nil {
		// full image is already saved, a missing thumb only degrades display
		log.Println("UploadProductImage thumbnail error:", err)
	}

	imageURL := "/static/productpic/" + filename
	product, err := h.Svc.UpdateProduct(ctx, storeID, productID, models.ProductDraft{Image: imageURL})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "product": product})
}
