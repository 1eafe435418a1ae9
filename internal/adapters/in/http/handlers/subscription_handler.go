// internal/adapters/in/http/handlers/subscription_handler.go
package handlers

import (
	"net/http"

	"storefront/internal/application/usecase"
)

// SubscriptionHandler serves POST /sub {email}.
type SubscriptionHandler struct {
	subs *usecase.SubscriptionUsecase
}

func NewSubscriptionHandler(subs *usecase.SubscriptionUsecase) http.Handler {
	return &SubscriptionHandler{subs: subs}
}

func (h *SubscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.subs == nil {
		writeErr(w, http.StatusInternalServerError, "subscription handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.subs.Subscribe(r.Context(), body.Email); err != nil {
		writeUsecaseErr(w, "subscription_handler", err)
		return
	}
	writeData(w, http.StatusOK, nil, "Subscription request sent. Please check your email to confirm.")
}
