// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	productdom "storefront/internal/domain/product"
)

const (
	defaultPageLimit  = 10
	defaultPageOffset = 0
)

// ListProductsQuery carries the optional catalog filters, sort and page
// window. Pointer fields distinguish "absent" from a zero value.
type ListProductsQuery struct {
	Title     string
	MinPrice  *float64
	MaxPrice  *float64
	IsInStock *bool
	Category  string

	// OrderByPrice sorts ascending when 0, descending otherwise.
	OrderByPrice *int
	// Newest sorts by createdAt descending. It is applied after OrderByPrice,
	// so when both are given Newest wins.
	Newest bool

	Offset *int
	Limit  *int
}

// PageMeta describes the page window relative to the filtered set.
type PageMeta struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// CatalogUsecase is the shared product query engine: filter, sort, paginate
// and text-search over the Products collection.
//
// Every operation reads the full catalog and applies predicates locally; the
// store gives no usable compound-filter guarantee, so correctness of the
// in-memory pass is the contract, not scan efficiency.
type CatalogUsecase struct {
	products productdom.Repository
}

func NewCatalogUsecase(products productdom.Repository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

// ListProducts filters (AND), sorts and paginates the catalog.
// Meta is computed on the filtered set before the page window is cut.
func (u *CatalogUsecase) ListProducts(ctx context.Context, q ListProductsQuery) ([]productdom.Product, PageMeta, error) {
	if u == nil || u.products == nil {
		return nil, PageMeta{}, errors.New("catalog usecase is not configured")
	}

	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("catalog: list products: %w", err)
	}

	filtered := make([]productdom.Product, 0, len(all))
	title := strings.ToLower(strings.TrimSpace(q.Title))
	category := strings.ToLower(strings.TrimSpace(q.Category))

	for _, p := range all {
		if title != "" && !strings.Contains(strings.ToLower(p.Title), title) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.IsInStock != nil && p.IsInStock != *q.IsInStock {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		filtered = append(filtered, p)
	}

	// Sort precedence: newest runs after orderByPrice, so it wins when both
	// are supplied.
	if q.OrderByPrice != nil {
		asc := *q.OrderByPrice == 0
		sort.SliceStable(filtered, func(i, j int) bool {
			if asc {
				return filtered[i].Price < filtered[j].Price
			}
			return filtered[i].Price > filtered[j].Price
		})
	}
	if q.Newest {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	offset := defaultPageOffset
	if q.Offset != nil && *q.Offset > 0 {
		offset = *q.Offset
	}
	limit := defaultPageLimit
	if q.Limit != nil && *q.Limit > 0 {
		limit = *q.Limit
	}

	total := len(filtered)
	meta := PageMeta{
		TotalItems:  total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: offset/limit + 1,
	}

	if offset >= total {
		return []productdom.Product{}, meta, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], meta, nil
}

// GetProduct returns productdom.ErrNotFound for unknown ids.
func (u *CatalogUsecase) GetProduct(ctx context.Context, id string) (productdom.Product, error) {
	if u == nil || u.products == nil {
		return productdom.Product{}, errors.New("catalog usecase is not configured")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return u.products.GetByID(ctx, id)
}

// Search matches term case-insensitively against title OR description.
// A blank term is ErrInvalidArgument.
func (u *CatalogUsecase) Search(ctx context.Context, term string) ([]productdom.Product, error) {
	if u == nil || u.products == nil {
		return nil, errors.New("catalog usecase is not configured")
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidArgument)
	}

	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: search: %w", err)
	}

	out := make([]productdom.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListCategories returns the distinct non-empty category values, sorted.
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]string, error) {
	if u == nil || u.products == nil {
		return nil, errors.New("catalog usecase is not configured")
	}

	all, err := u.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list categories: %w", err)
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, p := range all {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}
