// internal/adapters/in/http/handlers/helper_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// envelope is the uniform response wrapper for every route:
// {data, message?, error?, meta?}.
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, data any, message string) {
	writeJSON(w, code, envelope{Data: data, Message: message})
}

func writeDataMeta(w http.ResponseWriter, code int, data any, message string, meta any) {
	writeJSON(w, code, envelope{Data: data, Message: message, Meta: meta})
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, envelope{Data: nil, Error: msg})
}

// writeUsecaseErr maps the error taxonomy to HTTP codes. Upstream failures
// render a generic 500; the detail is logged only, never leaked verbatim.
func writeUsecaseErr(w http.ResponseWriter, tag string, err error) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, usecase.ErrInvalidArgument):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, productdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, cartdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, cartdom.ErrItemNotFound):
		writeErr(w, http.StatusNotFound, "Cart item not found")
	case errors.Is(err, orderdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, "Order not found")
	default:
		log.Printf("[%s] upstream failure: %v", tag, err)
		writeErr(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// query-string parse helpers; absent or malformed values stay nil.

func queryIntPtr(r *http.Request, key string) *int {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func queryFloatPtr(r *http.Request, key string) *float64 {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBoolPtr(r *http.Request, key string) *bool {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil
	}
	b := s == "true"
	return &b
}
