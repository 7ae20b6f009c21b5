package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoplink/carts"
	"shoplink/globals"
	"shoplink/ratelim"
	"shoplink/render"
	"shoplink/routes"
	"shoplink/sheets"
	"shoplink/stores"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, storeHandler *stores.Handler, cartHandler *carts.Handler, catalogHandler *render.Handler, sheetHandler *sheets.Handler) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddStoreRoutes(router, storeHandler, rateLimiter)
	routes.AddCartRoutes(router, cartHandler, rateLimiter)
	routes.AddCatalogRoutes(router, catalogHandler)
	routes.AddSheetRoutes(router, sheetHandler, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// storage backends: Mongo + Redis in production, in-memory for
	// local development without either
	var storage stores.Storage
	var cartBackend carts.Backend
	if os.Getenv("STORAGE") == "memory" {
		storage = stores.NewMemoryStorage()
		cartBackend = carts.NewMemoryBackend()
	} else {
		storage = stores.NewMongoStorage()
		cartBackend = carts.NewRedisBackend()
	}

	storeSvc := stores.NewService(storage, globals.PublicDomain)
	sheetClient := sheets.NewClient()
	cartSvc := carts.NewCart(cartBackend)

	storeHandler := stores.NewHandler(storeSvc, sheetClient)
	cartHandler := carts.NewHandler(cartSvc, storeSvc)
	catalogHandler := render.NewHandler(storeSvc, globals.PublicDomain)
	sheetHandler := sheets.NewHandler(sheetClient)

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(rateLimiter, storeHandler, cartHandler, catalogHandler, sheetHandler)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
