// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "storefront/internal/domain/cart"
)

const cartsCollection = "Carts"

// CartRepositoryFS implements cart.Repository on Firestore.
//
// Collection design:
//   - collection: Carts
//   - docId: userId (docId is the source of truth for ownership)
//   - fields: id (opaque cart id referenced by CartItems.cartId), userId,
//     createdAt
//
// Keying the doc on userId turns find-or-create into a conditional create:
// Doc(userId).Create fails with AlreadyExists instead of racing a second row
// into existence, so "one cart per user" holds without transactions.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartsCollection)
}

type cartDoc struct {
	ID        string    `firestore:"id"`
	UserID    string    `firestore:"userId"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// GetByUserID returns cart.ErrNotFound when the user has no cart.
func (r *CartRepositoryFS) GetByUserID(ctx context.Context, userID string) (cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return cartdom.Cart{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return cartdom.Cart{}, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Cart{}, cartdom.ErrNotFound
		}
		return cartdom.Cart{}, fmt.Errorf("cart_repository_fs: get: %w", err)
	}

	var d cartDoc
	if err := snap.DataTo(&d); err != nil {
		return cartdom.Cart{}, fmt.Errorf("cart_repository_fs: decode: %w", err)
	}
	return cartdom.Cart{ID: d.ID, UserID: uid, CreatedAt: d.CreatedAt}, nil
}

// CreateIfAbsent persists c under docId=c.UserID with a create precondition.
// On AlreadyExists the stored row is re-read and returned, so concurrent
// first-time callers all end up with the same cart.
func (r *CartRepositoryFS) CreateIfAbsent(ctx context.Context, c cartdom.Cart) (cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return cartdom.Cart{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(c.UserID)
	if uid == "" {
		return cartdom.Cart{}, errors.New("cart_repository_fs: cart.UserID is empty")
	}
	if strings.TrimSpace(c.ID) == "" {
		return cartdom.Cart{}, errors.New("cart_repository_fs: cart.ID is empty")
	}

	doc := cartDoc{ID: c.ID, UserID: uid, CreatedAt: c.CreatedAt}

	_, err := r.col().Doc(uid).Create(ctx, doc)
	if err == nil {
		return c, nil
	}
	if status.Code(err) != codes.AlreadyExists {
		return cartdom.Cart{}, fmt.Errorf("cart_repository_fs: create: %w", err)
	}

	// Lost the create race (or the cart predates this call): first match is
	// canonical, return the stored row.
	return r.GetByUserID(ctx, uid)
}
