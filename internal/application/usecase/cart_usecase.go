// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	cartdom "storefront/internal/domain/cart"
	productdom "storefront/internal/domain/product"
)

// CartItemView is a cart item enriched with its product. An item whose
// product lookup resolved nothing is kept with a nil product and
// Unresolved=true; the cart never silently drops an orphaned item.
type CartItemView struct {
	ID         string              `json:"id"`
	CartID     string              `json:"cartId"`
	ProductID  string              `json:"productId"`
	Product    *productdom.Product `json:"product"`
	Unresolved bool                `json:"unresolved,omitempty"`
}

// CartView is the enriched cart returned by GET /cart.
type CartView struct {
	ID     string         `json:"id"`
	UserID string         `json:"userId"`
	Items  []CartItemView `json:"items"`
}

// CartUsecase manages the per-user cart: find-or-create, item lifecycle and
// clear-all. All operations require a userID and fail with ErrUnauthorized
// before touching the store when it is blank.
type CartUsecase struct {
	carts    cartdom.Repository
	items    cartdom.ItemRepository
	products productdom.Repository

	now   func() time.Time
	newID func() string
}

func NewCartUsecase(carts cartdom.Repository, items cartdom.ItemRepository, products productdom.Repository) *CartUsecase {
	return &CartUsecase{
		carts:    carts,
		items:    items,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// GetOrCreateCart resolves the user's cart, creating it on first use.
//
// The create is idempotent: the repository keys it on userId, so two
// concurrent first-time requests converge on a single row and sequential
// calls always return the same cart id. (The distilled-from system did a
// non-atomic lookup-then-create and could race into duplicate rows; the
// repository contract here closes that by treating the stored row as
// canonical.)
func (u *CartUsecase) GetOrCreateCart(ctx context.Context, userID string) (cartdom.Cart, error) {
	if u == nil || u.carts == nil {
		return cartdom.Cart{}, errors.New("cart usecase is not configured")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return cartdom.Cart{}, ErrUnauthorized
	}

	c, err := u.carts.GetByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, cartdom.ErrNotFound) {
		return cartdom.Cart{}, fmt.Errorf("cart: get by user: %w", err)
	}

	created, err := u.carts.CreateIfAbsent(ctx, cartdom.NewCart(u.newID(), userID, u.now()))
	if err != nil {
		return cartdom.Cart{}, fmt.Errorf("cart: create: %w", err)
	}
	log.Printf("[cart_usecase] created cart id=%s userId=%s", created.ID, userID)
	return created, nil
}

// GetCart returns the user's cart (created on first use) with every item
// enriched by a product point lookup. Result order follows the stored item
// enumeration, not lookup completion order.
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartView, error) {
	if u == nil || u.items == nil || u.products == nil {
		return CartView{}, errors.New("cart usecase is not configured")
	}

	c, err := u.GetOrCreateCart(ctx, userID)
	if err != nil {
		return CartView{}, err
	}

	items, err := u.items.ListByCartID(ctx, c.ID)
	if err != nil {
		return CartView{}, fmt.Errorf("cart: list items: %w", err)
	}

	view := CartView{ID: c.ID, UserID: c.UserID, Items: []CartItemView{}}
	if len(items) == 0 {
		return view, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	resolved, err := u.products.GetMany(ctx, ids)
	if err != nil {
		return CartView{}, fmt.Errorf("cart: resolve products: %w", err)
	}

	for i, it := range items {
		iv := CartItemView{
			ID:        it.ID,
			CartID:    it.CartID,
			ProductID: it.ProductID,
		}
		if i < len(resolved) && resolved[i] != nil {
			iv.Product = resolved[i]
		} else {
			iv.Unresolved = true
		}
		view.Items = append(view.Items, iv)
	}
	return view, nil
}

// AddItem appends a new item row unconditionally; repeated adds of the same
// product produce distinct rows (there is no quantity to merge into).
func (u *CartUsecase) AddItem(ctx context.Context, userID, productID string) error {
	if u == nil || u.items == nil {
		return errors.New("cart usecase is not configured")
	}

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return fmt.Errorf("%w: productId is required", ErrInvalidArgument)
	}

	c, err := u.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	it := cartdom.Item{ID: u.newID(), CartID: c.ID, ProductID: productID}
	if err := u.items.Create(ctx, it); err != nil {
		return fmt.Errorf("cart: add item: %w", err)
	}
	return nil
}

// DeleteItem removes one item from the caller's cart. The item must belong
// to that cart: a foreign or unknown cartItemId is reported as not found
// rather than deleting another user's row.
func (u *CartUsecase) DeleteItem(ctx context.Context, userID, cartItemID string) error {
	if u == nil || u.carts == nil || u.items == nil {
		return errors.New("cart usecase is not configured")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUnauthorized
	}
	cartItemID = strings.TrimSpace(cartItemID)
	if cartItemID == "" {
		return fmt.Errorf("%w: cartItemId is required", ErrInvalidArgument)
	}

	c, err := u.carts.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, cartdom.ErrNotFound) {
			return cartdom.ErrNotFound
		}
		return fmt.Errorf("cart: get by user: %w", err)
	}

	it, err := u.items.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, cartdom.ErrItemNotFound) {
			return cartdom.ErrItemNotFound
		}
		return fmt.Errorf("cart: get item: %w", err)
	}
	if it.CartID != c.ID {
		log.Printf("[cart_usecase] delete refused: item %s belongs to cart %s, caller cart %s", cartItemID, it.CartID, c.ID)
		return cartdom.ErrItemNotFound
	}

	if err := u.items.Delete(ctx, cartItemID); err != nil {
		return fmt.Errorf("cart: delete item: %w", err)
	}
	return nil
}

// ClearCart deletes every item of the user's cart. The cart row itself
// survives, so a later GetCart returns the same cart id with empty items.
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if u == nil || u.carts == nil || u.items == nil {
		return errors.New("cart usecase is not configured")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrUnauthorized
	}

	c, err := u.carts.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, cartdom.ErrNotFound) {
			return cartdom.ErrNotFound
		}
		return fmt.Errorf("cart: get by user: %w", err)
	}

	if err := u.items.DeleteAll(ctx, c.ID); err != nil {
		return fmt.Errorf("cart: clear: %w", err)
	}
	log.Printf("[cart_usecase] cleared cart id=%s userId=%s", c.ID, userID)
	return nil
}
