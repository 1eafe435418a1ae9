// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "storefront/internal/domain/cart"
	productdom "storefront/internal/domain/product"
)

func newTestCartUsecase(products *memProductRepo) (*CartUsecase, *memCartRepo, *memItemRepo) {
	carts := newMemCartRepo()
	items := newMemItemRepo()
	u := NewCartUsecase(carts, items, products)

	n := 0
	u.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	u.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return u, carts, items
}

func TestGetOrCreateCartIsIdempotent(t *testing.T) {
	u, carts, _ := newTestCartUsecase(newMemProductRepo())
	ctx := context.Background()

	first, err := u.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := u.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, carts.creates)
}

func TestGetOrCreateCartRequiresUser(t *testing.T) {
	u, _, _ := newTestCartUsecase(newMemProductRepo())

	_, err := u.GetOrCreateCart(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestAddItemDuplicatesStayDistinct(t *testing.T) {
	u, _, items := newTestCartUsecase(newMemProductRepo())
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "u1", "p1"))
	require.NoError(t, u.AddItem(ctx, "u1", "p1"))

	cart, err := u.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)

	rows, err := items.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, "p1", rows[0].ProductID)
	assert.Equal(t, "p1", rows[1].ProductID)
}

func TestAddItemRequiresProductID(t *testing.T) {
	u, _, _ := newTestCartUsecase(newMemProductRepo())

	err := u.AddItem(context.Background(), "u1", "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestGetCartEnrichesItemsInOrder(t *testing.T) {
	products := newMemProductRepo(
		productdom.Product{ID: "p1", Title: "Running Shoe", Price: 80},
		productdom.Product{ID: "p2", Title: "Hat", Price: 20},
	)
	u, _, _ := newTestCartUsecase(products)
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "u1", "p2"))
	require.NoError(t, u.AddItem(ctx, "u1", "p1"))

	view, err := u.GetCart(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "p2", view.Items[0].ProductID)
	require.NotNil(t, view.Items[0].Product)
	assert.Equal(t, "Hat", view.Items[0].Product.Title)
	assert.Equal(t, "p1", view.Items[1].ProductID)
	require.NotNil(t, view.Items[1].Product)
	assert.Equal(t, "Running Shoe", view.Items[1].Product.Title)
}

func TestGetCartKeepsOrphanedItems(t *testing.T) {
	products := newMemProductRepo(productdom.Product{ID: "p1", Title: "Running Shoe"})
	u, _, _ := newTestCartUsecase(products)
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "u1", "p1"))
	require.NoError(t, u.AddItem(ctx, "u1", "gone"))

	view, err := u.GetCart(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.False(t, view.Items[0].Unresolved)
	assert.True(t, view.Items[1].Unresolved)
	assert.Nil(t, view.Items[1].Product)
	assert.Equal(t, "gone", view.Items[1].ProductID)
}

func TestDeleteItemWithoutCartIsNotFound(t *testing.T) {
	u, _, _ := newTestCartUsecase(newMemProductRepo())

	err := u.DeleteItem(context.Background(), "u1", "item-1")
	assert.True(t, errors.Is(err, cartdom.ErrNotFound))
}

func TestDeleteItemChecksOwnership(t *testing.T) {
	u, _, items := newTestCartUsecase(newMemProductRepo())
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "u1", "p1"))
	require.NoError(t, u.AddItem(ctx, "u2", "p2"))

	otherCart, err := u.GetOrCreateCart(ctx, "u2")
	require.NoError(t, err)
	otherRows, err := items.ListByCartID(ctx, otherCart.ID)
	require.NoError(t, err)
	require.Len(t, otherRows, 1)

	// u1 tries to delete u2's item: not found, row survives.
	err = u.DeleteItem(ctx, "u1", otherRows[0].ID)
	assert.True(t, errors.Is(err, cartdom.ErrItemNotFound))

	stillThere, err := items.GetByID(ctx, otherRows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, otherCart.ID, stillThere.CartID)
}

func TestDeleteItemRemovesOwnRow(t *testing.T) {
	u, _, items := newTestCartUsecase(newMemProductRepo())
	ctx := context.Background()

	require.NoError(t, u.AddItem(ctx, "u1", "p1"))
	cart, err := u.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)
	rows, err := items.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, u.DeleteItem(ctx, "u1", rows[0].ID))

	rows, err = items.ListByCartID(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClearCartKeepsCartRow(t *testing.T) {
	u, _, _ := newTestCartUsecase(newMemProductRepo())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, u.AddItem(ctx, "u1", fmt.Sprintf("p%d", i)))
	}
	before, err := u.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, u.ClearCart(ctx, "u1"))

	view, err := u.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before.ID, view.ID)
	assert.Empty(t, view.Items)
}

func TestClearCartWithoutCartIsNotFound(t *testing.T) {
	u, _, _ := newTestCartUsecase(newMemProductRepo())

	err := u.ClearCart(context.Background(), "u1")
	assert.True(t, errors.Is(err, cartdom.ErrNotFound))
}
