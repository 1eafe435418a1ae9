// internal/adapters/out/firestore/cart_item_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "storefront/internal/domain/cart"
)

const cartItemsCollection = "CartItems"

// CartItemRepositoryFS implements cart.ItemRepository on Firestore.
// docId = item id; fields: cartId, productId.
type CartItemRepositoryFS struct {
	Client *firestore.Client
}

func NewCartItemRepositoryFS(client *firestore.Client) *CartItemRepositoryFS {
	return &CartItemRepositoryFS{Client: client}
}

func (r *CartItemRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartItemsCollection)
}

type cartItemDoc struct {
	ID        string `firestore:"id"`
	CartID    string `firestore:"cartId"`
	ProductID string `firestore:"productId"`
}

// ListByCartID returns every item of a cart. Empty carts yield an empty
// slice, not an error.
func (r *CartItemRepositoryFS) ListByCartID(ctx context.Context, cartID string) ([]cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_item_repository_fs: firestore client is nil")
	}

	cid := strings.TrimSpace(cartID)
	if cid == "" {
		return nil, errors.New("cart_item_repository_fs: cartID is empty")
	}

	out := make([]cartdom.Item, 0, 8)

	it := r.col().Where("cartId", "==", cid).Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cart_item_repository_fs: list: %w", err)
		}

		var d cartItemDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("cart_item_repository_fs: decode %s: %w", snap.Ref.ID, err)
		}
		out = append(out, cartdom.Item{ID: snap.Ref.ID, CartID: d.CartID, ProductID: d.ProductID})
	}
	return out, nil
}

// GetByID returns cart.ErrItemNotFound for unknown ids.
func (r *CartItemRepositoryFS) GetByID(ctx context.Context, id string) (cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return cartdom.Item{}, errors.New("cart_item_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return cartdom.Item{}, cartdom.ErrItemNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Item{}, cartdom.ErrItemNotFound
		}
		return cartdom.Item{}, fmt.Errorf("cart_item_repository_fs: get: %w", err)
	}

	var d cartItemDoc
	if err := snap.DataTo(&d); err != nil {
		return cartdom.Item{}, fmt.Errorf("cart_item_repository_fs: decode: %w", err)
	}
	return cartdom.Item{ID: snap.Ref.ID, CartID: d.CartID, ProductID: d.ProductID}, nil
}

func (r *CartItemRepositoryFS) Create(ctx context.Context, it cartdom.Item) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_item_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(it.ID)
	if id == "" {
		return errors.New("cart_item_repository_fs: item.ID is empty")
	}

	doc := cartItemDoc{ID: id, CartID: strings.TrimSpace(it.CartID), ProductID: strings.TrimSpace(it.ProductID)}
	if doc.CartID == "" || doc.ProductID == "" {
		return errors.New("cart_item_repository_fs: cartId and productId are required")
	}

	if _, err := r.col().Doc(id).Create(ctx, doc); err != nil {
		return fmt.Errorf("cart_item_repository_fs: create: %w", err)
	}
	return nil
}

func (r *CartItemRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_item_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("cart_item_repository_fs: id is empty")
	}

	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("cart_item_repository_fs: delete: %w", err)
	}
	return nil
}

// DeleteAll removes every item of a cart with a BulkWriter, so the deletes go
// out in parallel and in no particular order.
func (r *CartItemRepositoryFS) DeleteAll(ctx context.Context, cartID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_item_repository_fs: firestore client is nil")
	}

	items, err := r.ListByCartID(ctx, cartID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	bw := r.Client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(items))
	for _, it := range items {
		job, err := bw.Delete(r.col().Doc(it.ID))
		if err != nil {
			bw.End()
			return fmt.Errorf("cart_item_repository_fs: bulk delete enqueue: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("cart_item_repository_fs: bulk delete: %w", err)
		}
	}

	log.Printf("[cart_item_repository_fs] cleared cartId=%s items=%d", strings.TrimSpace(cartID), len(items))
	return nil
}
