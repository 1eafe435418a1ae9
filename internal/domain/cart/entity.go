// internal/domain/cart/entity.go
package cart

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("cart: not found")
	ErrItemNotFound = errors.New("cart: item not found")
)

// Cart is one row in the Carts collection. At most one cart should exist per
// user; the repository enforces that with an idempotent create keyed by
// userId, and treats the first match as canonical on reads.
//
// A cart row is never deleted once created. Clearing a cart only removes its
// items.
type Cart struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Item is one row in the CartItems collection. There is no quantity field:
// adding the same product twice produces two rows.
type Item struct {
	ID        string `json:"id" firestore:"id"`
	CartID    string `json:"cartId" firestore:"cartId"`
	ProductID string `json:"productId" firestore:"productId"`
}

// NewCart builds a cart row for userID. id is the generated unique id.
func NewCart(id, userID string, now time.Time) Cart {
	return Cart{
		ID:        strings.TrimSpace(id),
		UserID:    strings.TrimSpace(userID),
		CreatedAt: now,
	}
}

// Repository is the port over the Carts collection.
type Repository interface {
	// GetByUserID returns ErrNotFound when the user has no cart yet.
	GetByUserID(ctx context.Context, userID string) (Cart, error)

	// CreateIfAbsent persists c unless a cart for c.UserID already exists, in
	// which case the existing row is returned. The create is atomic on
	// userId, so concurrent first-time requests converge on one row.
	CreateIfAbsent(ctx context.Context, c Cart) (Cart, error)
}

// ItemRepository is the port over the CartItems collection.
type ItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]Item, error)

	// GetByID returns ErrItemNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (Item, error)

	Create(ctx context.Context, it Item) error

	Delete(ctx context.Context, id string) error

	// DeleteAll removes every item of a cart. Deletion order is not defined;
	// the implementation may issue the deletes in parallel.
	DeleteAll(ctx context.Context, cartID string) error
}
