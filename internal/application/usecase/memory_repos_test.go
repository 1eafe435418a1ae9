// internal/application/usecase/memory_repos_test.go
package usecase

import (
	"context"
	"sync"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// In-memory fakes mirroring the Firestore adapters' contracts.

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]productdom.Product
	order    []string
}

func newMemProductRepo(ps ...productdom.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]productdom.Product{}}
	for _, p := range ps {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memProductRepo) ListAll(ctx context.Context) ([]productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]productdom.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return productdom.Product{}, productdom.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) GetMany(ctx context.Context, ids []string) ([]*productdom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*productdom.Product, len(ids))
	for i, id := range ids {
		if p, ok := r.products[id]; ok {
			cp := p
			out[i] = &cp
		}
	}
	return out, nil
}

type memCartRepo struct {
	mu      sync.Mutex
	byUser  map[string]cartdom.Cart
	creates int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{byUser: map[string]cartdom.Cart{}}
}

func (r *memCartRepo) GetByUserID(ctx context.Context, userID string) (cartdom.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byUser[userID]
	if !ok {
		return cartdom.Cart{}, cartdom.ErrNotFound
	}
	return c, nil
}

func (r *memCartRepo) CreateIfAbsent(ctx context.Context, c cartdom.Cart) (cartdom.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byUser[c.UserID]; ok {
		return existing, nil
	}
	r.byUser[c.UserID] = c
	r.creates++
	return c, nil
}

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]cartdom.Item
	order []string
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]cartdom.Item{}}
}

func (r *memItemRepo) ListByCartID(ctx context.Context, cartID string) ([]cartdom.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []cartdom.Item{}
	for _, id := range r.order {
		it, ok := r.items[id]
		if ok && it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) GetByID(ctx context.Context, id string) (cartdom.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return cartdom.Item{}, cartdom.ErrItemNotFound
	}
	return it, nil
}

func (r *memItemRepo) Create(ctx context.Context, it cartdom.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = it
	r.order = append(r.order, it.ID)
	return nil
}

func (r *memItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) DeleteAll(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []orderdom.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{} }

func (r *memOrderRepo) Create(ctx context.Context, o orderdom.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}

func (r *memOrderRepo) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []orderdom.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
