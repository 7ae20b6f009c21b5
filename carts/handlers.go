package carts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"shoplink/models"
	"shoplink/stores"
	"shoplink/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Cart   *Cart
	Stores *stores.Service
}

func NewHandler(cart *Cart, storeSvc *stores.Service) *Handler {
	return &Handler{Cart: cart, Stores: storeSvc}
}

// sessionID identifies the shopper's cart. The storefront generates one per
// browser session and sends it on every cart call.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	sid := r.Header.Get("X-Session-ID")
	if sid == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "X-Session-ID header is required")
	}
	return sid
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sid := sessionID(w, r)
	if sid == "" {
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToCart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	items, err := h.Cart.Add(ctx, ps.ByName("storeid"), sid, item)
	if err != nil {
		respondCartError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"ok":    true,
		"items": items,
		"total": Total(items),
	})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sid := sessionID(w, r)
	if sid == "" {
		return
	}

	items, err := h.Cart.Items(ctx, ps.ByName("storeid"), sid)
	if err != nil {
		respondCartError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":    true,
		"items": items,
		"total": Total(items),
	})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sid := sessionID(w, r)
	if sid == "" {
		return
	}

	items, err := h.Cart.Remove(ctx, ps.ByName("storeid"), sid, ps.ByName("productid"))
	if err != nil {
		respondCartError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":    true,
		"items": items,
		"total": Total(items),
	})
}

// PlaceOrder resolves the store's WhatsApp number, formats the order, and
// returns the deep link for the client to open. The cart is cleared.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sid := sessionID(w, r)
	if sid == "" {
		return
	}

	var payload struct {
		CustomerName  string `json:"customerName"`
		CustomerPhone string `json:"customerPhone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	store, _, err := h.Stores.GetStore(ctx, ps.ByName("storeid"))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound), errors.Is(err, stores.ErrInvalidID):
			utils.RespondWithError(w, http.StatusNotFound, "Store not found")
		default:
			log.Println("PlaceOrder store lookup error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	handoff, err := h.Cart.PlaceOrder(ctx, store, sid, payload.CustomerName, payload.CustomerPhone)
	if err != nil {
		respondCartError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":      true,
		"waUrl":   handoff.WaURL,
		"message": handoff.Message,
		"total":   handoff.Total,
	})
}

func respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBadCartItem):
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid cart item fields")
	case errors.Is(err, ErrMissingCustomer):
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in your name and phone number")
	case errors.Is(err, ErrEmptyCart):
		utils.RespondWithError(w, http.StatusBadRequest, "Your cart is empty")
	default:
		log.Println("cart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not update cart")
	}
}
