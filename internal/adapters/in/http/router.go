// internal/adapters/in/http/router.go
package httpin

import (
	"encoding/json"
	"log"
	"net/http"

	"storefront/internal/adapters/in/http/middleware"
)

// Deps is the handler set the router wires. Catalog and subscription routes
// are public; cart and order routes sit behind the auth middleware.
type Deps struct {
	FirebaseAuth *middleware.FirebaseAuthClient

	Product      http.Handler
	Search       http.Handler
	Category     http.Handler
	Cart         http.Handler
	Order        http.Handler
	Subscription http.Handler
}

// handleSafe registers pattern with h. A nil handler is logged and replaced
// with NotFoundHandler so a partial container still boots.
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// NewRouter builds the route table of the storefront API.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	auth := &middleware.Auth{FirebaseAuth: deps.FirebaseAuth}
	authed := func(h http.Handler) http.Handler {
		if h == nil {
			return nil
		}
		return auth.Handler(h)
	}

	// catalog (public)
	handleSafe(mux, "/products", deps.Product, "Product")
	handleSafe(mux, "/products/", deps.Product, "Product")
	handleSafe(mux, "/search", deps.Search, "Search")
	handleSafe(mux, "/cats", deps.Category, "Category")

	// cart / orders (authenticated)
	handleSafe(mux, "/cart", authed(deps.Cart), "Cart")
	handleSafe(mux, "/cart/", authed(deps.Cart), "Cart")
	handleSafe(mux, "/orders", authed(deps.Order), "Order")

	// subscription (public)
	handleSafe(mux, "/sub", deps.Subscription, "Subscription")

	// everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  nil,
			"error": "Route not found " + r.URL.Path,
		})
	})

	return middleware.Recover(mux)
}
