// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/application/usecase"
)

// CartHandler serves the authenticated cart routes:
//
//	GET    /cart                get-or-create + enrich
//	POST   /cart {productId}    add item
//	DELETE /cart/{cartItemId}   delete one item
//	DELETE /cart                clear all items
type CartHandler struct {
	cart *usecase.CartUsecase
}

func NewCartHandler(cart *usecase.CartUsecase) http.Handler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.cart == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	claims, ok := middleware.CurrentClaims(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	itemID := ""
	if rest := strings.TrimPrefix(path, "/cart"); rest != "" && rest != path {
		itemID = strings.TrimPrefix(rest, "/")
	}

	switch {
	case r.Method == http.MethodGet && itemID == "":
		h.handleGet(w, r, claims.UserID)
	case r.Method == http.MethodPost && itemID == "":
		h.handleAdd(w, r, claims.UserID)
	case r.Method == http.MethodDelete && itemID != "":
		h.handleDeleteItem(w, r, claims.UserID, itemID)
	case r.Method == http.MethodDelete:
		h.handleClear(w, r, claims.UserID)
	default:
		writeErr(w, http.StatusNotFound, "Route not found "+r.URL.Path)
	}
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request, userID string) {
	view, err := h.cart.GetCart(r.Context(), userID)
	if err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}

	msg := "Cart fetched successfully"
	if len(view.Items) == 0 {
		msg = "Cart is empty"
	}
	writeData(w, http.StatusOK, view, msg)
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, userID string) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cart.AddItem(r.Context(), userID, body.ProductID); err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}
	writeData(w, http.StatusOK, nil, "Item added to cart")
}

func (h *CartHandler) handleDeleteItem(w http.ResponseWriter, r *http.Request, userID, itemID string) {
	if err := h.cart.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}
	writeData(w, http.StatusOK, nil, fmt.Sprintf("Cart item %s deleted successfully", itemID))
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.cart.ClearCart(r.Context(), userID); err != nil {
		writeUsecaseErr(w, "cart_handler", err)
		return
	}
	writeData(w, http.StatusOK, nil, "All cart items deleted successfully")
}
