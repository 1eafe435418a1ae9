// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	productdom "storefront/internal/domain/product"
)

const productsCollection = "Products"

// ProductRepositoryFS implements product.Repository on Firestore.
// The catalog is read-only for this service.
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(productsCollection)
}

// ListAll scans the whole Products collection.
func (r *ProductRepositoryFS) ListAll(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	out := make([]productdom.Product, 0, 64)

	it := r.col().Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("product_repository_fs: scan: %w", err)
		}

		p, err := docToProduct(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID returns product.ErrNotFound for unknown ids.
func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, fmt.Errorf("product_repository_fs: get %s: %w", id, err)
	}
	return docToProduct(snap)
}

// GetMany resolves ids with one batched lookup. GetAll preserves input order,
// so result[i] corresponds to ids[i]; missing docs come back as nil entries.
func (r *ProductRepositoryFS) GetMany(ctx context.Context, ids []string) ([]*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	if len(ids) == 0 {
		return nil, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.col().Doc(strings.TrimSpace(id)))
	}

	snaps, err := r.Client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("product_repository_fs: get many: %w", err)
	}

	out := make([]*productdom.Product, len(ids))
	for i, snap := range snaps {
		if snap == nil || !snap.Exists() {
			continue
		}
		p, err := docToProduct(snap)
		if err != nil {
			return nil, err
		}
		out[i] = &p
	}
	return out, nil
}

func docToProduct(snap *firestore.DocumentSnapshot) (productdom.Product, error) {
	var p productdom.Product
	if err := snap.DataTo(&p); err != nil {
		return productdom.Product{}, fmt.Errorf("product_repository_fs: decode %s: %w", snap.Ref.ID, err)
	}
	// docId is the source of truth even when the id field is absent.
	p.ID = snap.Ref.ID
	return p, nil
}
