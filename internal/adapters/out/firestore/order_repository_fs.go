// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "storefront/internal/domain/order"
)

const ordersCollection = "Orders"

// OrderRepositoryFS implements order.Repository on Firestore.
// docId = order id; orders are write-once.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(ordersCollection)
}

type orderDoc struct {
	ID         string    `firestore:"id"`
	UserID     string    `firestore:"userId"`
	ProductIDs []string  `firestore:"productIds"`
	OrderedAt  time.Time `firestore:"orderedAt"`
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(o.ID)
	if id == "" {
		return errors.New("order_repository_fs: order.ID is empty")
	}
	if strings.TrimSpace(o.UserID) == "" {
		return errors.New("order_repository_fs: order.UserID is empty")
	}

	doc := orderDoc{ID: id, UserID: o.UserID, ProductIDs: o.ProductIDs, OrderedAt: o.OrderedAt}

	// Orders are immutable: Create, never Set, so a duplicate id surfaces as
	// an error instead of silently overwriting a snapshot.
	if _, err := r.col().Doc(id).Create(ctx, doc); err != nil {
		return fmt.Errorf("order_repository_fs: create: %w", err)
	}
	return nil
}

func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}

	out := make([]orderdom.Order, 0, 8)

	it := r.col().Where("userId", "==", uid).Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("order_repository_fs: list: %w", err)
		}

		var d orderDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("order_repository_fs: decode %s: %w", snap.Ref.ID, err)
		}
		out = append(out, orderdom.Order{
			ID:         snap.Ref.ID,
			UserID:     d.UserID,
			ProductIDs: d.ProductIDs,
			OrderedAt:  d.OrderedAt,
		})
	}
	return out, nil
}
