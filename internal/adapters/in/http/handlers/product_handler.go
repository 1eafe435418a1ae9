// internal/adapters/in/http/handlers/product_handler.go
package handlers

import (
	"net/http"
	"strings"

	"storefront/internal/application/usecase"
)

// ProductHandler serves the public catalog routes:
//
//	GET /products           list with filters/sort/pagination
//	GET /products/{id}      get by id
type ProductHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewProductHandler(catalog *usecase.CatalogUsecase) http.Handler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if rest := strings.TrimPrefix(path, "/products"); rest != "" && rest != path {
		h.handleGetByID(w, r, strings.TrimPrefix(rest, "/"))
		return
	}
	h.handleList(w, r)
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := usecase.ListProductsQuery{
		Title:        strings.TrimSpace(qs.Get("title")),
		MinPrice:     queryFloatPtr(r, "minPrice"),
		MaxPrice:     queryFloatPtr(r, "maxPrice"),
		IsInStock:    queryBoolPtr(r, "isInStock"),
		Category:     strings.TrimSpace(qs.Get("category")),
		OrderByPrice: queryIntPtr(r, "orderByPrice"),
		Newest:       strings.TrimSpace(qs.Get("newest")) == "true",
		Offset:       queryIntPtr(r, "offset"),
		Limit:        queryIntPtr(r, "limit"),
	}

	items, meta, err := h.catalog.ListProducts(r.Context(), q)
	if err != nil {
		writeUsecaseErr(w, "product_handler", err)
		return
	}
	writeDataMeta(w, http.StatusOK, items, "Products fetched successfully", meta)
}

func (h *ProductHandler) handleGetByID(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeUsecaseErr(w, "product_handler", err)
		return
	}
	writeData(w, http.StatusOK, p, "Product fetched successfully")
}

// SearchHandler serves GET /search?searchTerm=.
type SearchHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewSearchHandler(catalog *usecase.CatalogUsecase) http.Handler {
	return &SearchHandler{catalog: catalog}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "search handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	term := r.URL.Query().Get("searchTerm")
	items, err := h.catalog.Search(r.Context(), term)
	if err != nil {
		writeUsecaseErr(w, "search_handler", err)
		return
	}
	writeData(w, http.StatusOK, items, "Search completed successfully")
}

// CategoryHandler serves GET /cats.
type CategoryHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewCategoryHandler(catalog *usecase.CatalogUsecase) http.Handler {
	return &CategoryHandler{catalog: catalog}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "category handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeUsecaseErr(w, "category_handler", err)
		return
	}
	writeData(w, http.StatusOK, cats, "Categories fetched successfully")
}
