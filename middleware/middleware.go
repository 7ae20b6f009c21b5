package middleware

import (
	"context"
	"net/http"
	"time"

	"shoplink/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Claims for the owner token issued at store creation. The token manages
// exactly one store.
type Claims struct {
	StoreID string `json:"storeId"`
	jwt.RegisteredClaims
}

// NewOwnerToken signs a token granting management access to one store.
func NewOwnerToken(storeID string) (string, error) {
	claims := &Claims{
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
			http.Error(w, "Invalid token format", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
			return globals.JwtSecret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.StoreIDKey, claims.StoreID)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches the managed store id to the context when a valid
// token is presented, and passes through otherwise.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if len(tokenString) >= 8 && tokenString[:7] == "Bearer " {
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
				return globals.JwtSecret, nil
			})
			if err == nil && token.Valid {
				r = r.WithContext(context.WithValue(r.Context(), globals.StoreIDKey, claims.StoreID))
			}
		}
		next(w, r, ps)
	}
}

// ManagedStoreID returns the store id the request's owner token manages, or
// "" for anonymous shoppers.
func ManagedStoreID(r *http.Request) string {
	storeID, ok := r.Context().Value(globals.StoreIDKey).(string)
	if !ok {
		return ""
	}
	return storeID
}
