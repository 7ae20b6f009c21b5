package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(envOr("JWT_SECRET", "change-me-in-production"))

// PublicDomain is the suffix appended to a store's slug on deploy.
var PublicDomain = envOr("PUBLIC_DOMAIN", "shop.link")

// Context keys
type ContextKey string

const StoreIDKey ContextKey = "storeId"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
