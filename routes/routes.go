package routes

import (
	"net/http"

	"shoplink/carts"
	"shoplink/middleware"
	"shoplink/ratelim"
	"shoplink/render"
	"shoplink/sheets"
	"shoplink/stores"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddStoreRoutes(router *httprouter.Router, h *stores.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/stores", rl.Limit(h.CreateStore))
	router.GET("/api/stores/:storeid", h.GetStore)
	router.POST("/api/stores/:storeid/deploy", rl.Limit(middleware.Authenticate(h.Deploy)))
	router.PUT("/api/stores/:storeid/template", middleware.Authenticate(h.UpdateTemplate))
	router.GET("/api/stores/:storeid/qr", h.StoreQR)

	router.POST("/api/stores/:storeid/products", middleware.Authenticate(h.AddProduct))
	router.PUT("/api/stores/:storeid/products/:productid", middleware.Authenticate(h.UpdateProduct))
	router.DELETE("/api/stores/:storeid/products/:productid", middleware.Authenticate(h.DeleteProduct))
	router.POST("/api/stores/:storeid/products/:productid/image", middleware.Authenticate(h.UploadProductImage))
}

func AddCartRoutes(router *httprouter.Router, h *carts.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/stores/:storeid/cart", h.GetCart)
	router.POST("/api/stores/:storeid/cart", rl.Limit(h.AddToCart))
	router.DELETE("/api/stores/:storeid/cart/:productid", h.RemoveFromCart)
	router.POST("/api/stores/:storeid/cart/order", rl.Limit(h.PlaceOrder))
}

func AddCatalogRoutes(router *httprouter.Router, h *render.Handler) {
	router.GET("/api/stores/:storeid/view", middleware.OptionalAuth(h.GetCatalogView))
	router.GET("/api/stores/:storeid/catalog.pdf", h.CatalogPDF)
}

func AddSheetRoutes(router *httprouter.Router, h *sheets.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/sheets/preview", rl.Limit(h.Preview))
}
