// internal/adapters/in/http/handlers/order_handler.go
package handlers

import (
	"net/http"

	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/application/usecase"
)

// OrderHandler serves the authenticated order routes:
//
//	GET  /orders                list + enrich
//	POST /orders {productIds}   place order + best-effort confirmation mail
type OrderHandler struct {
	orders *usecase.OrderUsecase
}

func NewOrderHandler(orders *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.orders == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}

	claims, ok := middleware.CurrentClaims(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, claims.UserID)
	case http.MethodPost:
		h.handlePlace(w, r, claims)
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request, userID string) {
	view, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		writeUsecaseErr(w, "order_handler", err)
		return
	}
	writeData(w, http.StatusOK, view, "Orders fetched successfully")
}

func (h *OrderHandler) handlePlace(w http.ResponseWriter, r *http.Request, claims middleware.Claims) {
	var body struct {
		ProductIDs []string `json:"productIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.orders.PlaceOrder(r.Context(), claims.UserID, claims.Email, body.ProductIDs)
	if err != nil {
		writeUsecaseErr(w, "order_handler", err)
		return
	}
	writeData(w, http.StatusOK, o, "Order placed successfully")
}
