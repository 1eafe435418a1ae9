// internal/domain/order/entity.go
package order

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("order: not found")

// Order is an immutable purchase snapshot. There is no status field and no
// lifecycle beyond creation; productIds are stored as given at placement time
// and are not validated against the catalog.
type Order struct {
	ID         string    `json:"id" firestore:"id"`
	UserID     string    `json:"userId" firestore:"userId"`
	ProductIDs []string  `json:"productIds" firestore:"productIds"`
	OrderedAt  time.Time `json:"orderedAt" firestore:"orderedAt"`
}

// NewOrder builds an order snapshot. productIDs keeps the caller's ordering.
func NewOrder(id, userID string, productIDs []string, now time.Time) Order {
	ids := make([]string, 0, len(productIDs))
	for _, pid := range productIDs {
		pid = strings.TrimSpace(pid)
		if pid == "" {
			continue
		}
		ids = append(ids, pid)
	}
	return Order{
		ID:         strings.TrimSpace(id),
		UserID:     strings.TrimSpace(userID),
		ProductIDs: ids,
		OrderedAt:  now,
	}
}

// Repository is the port over the Orders collection.
type Repository interface {
	Create(ctx context.Context, o Order) error
	ListByUserID(ctx context.Context, userID string) ([]Order, error)
}
