// internal/domain/product/entity.go
package product

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("product: not found")

// Product is a catalog entry. The catalog is owned by an external
// management process; this service only ever reads it.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category"`
	Price       float64   `json:"price" firestore:"price"`
	IsInStock   bool      `json:"isInStock" firestore:"isInStock"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// Repository is the read-only port over the Products collection.
//
// The store offers no compound filtering usable here, so ListAll returns the
// full collection and callers apply predicates in memory.
type Repository interface {
	// ListAll scans the whole catalog.
	ListAll(ctx context.Context) ([]Product, error)

	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Product, error)

	// GetMany resolves ids by point lookup. The result slice is aligned with
	// ids: position i holds the product for ids[i], or nil when the lookup
	// found nothing. Callers decide the orphan policy.
	GetMany(ctx context.Context, ids []string) ([]*Product, error)
}
