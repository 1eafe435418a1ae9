// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	orderdom "storefront/internal/domain/order"
	productdom "storefront/internal/domain/product"
)

// OrderProductView is one product reference of an order, enriched by point
// lookup. Same orphan policy as the cart: a product that no longer resolves
// keeps its id with Unresolved=true instead of being dropped from history.
type OrderProductView struct {
	ProductID  string              `json:"productId"`
	Product    *productdom.Product `json:"product"`
	Unresolved bool                `json:"unresolved,omitempty"`
}

// OrderView is an order with its product references resolved.
type OrderView struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	ProductIDs []string           `json:"productIds"`
	OrderedAt  time.Time          `json:"orderedAt"`
	Products   []OrderProductView `json:"products"`
}

// OrderListView is the payload of GET /orders.
type OrderListView struct {
	UserID string      `json:"userId"`
	Orders []OrderView `json:"orders"`
}

// OrderUsecase creates order snapshots and lists them back enriched.
//
// Order persistence and notification are deliberately not transactional: the
// order is persisted first, the confirmation mail is best-effort, and a mail
// failure never fails the call or rolls the order back.
type OrderUsecase struct {
	orders   orderdom.Repository
	products productdom.Repository
	mailer   OrderMailer

	now   func() time.Time
	newID func() string
}

func NewOrderUsecase(orders orderdom.Repository, products productdom.Repository, mailer OrderMailer) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		mailer:   mailer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.NewString() },
	}
}

// PlaceOrder persists an order snapshot for the given product list and, when
// the identity carries an email address, sends a confirmation mail.
// productIds are stored as given; no existence check against the catalog.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID, userEmail string, productIDs []string) (orderdom.Order, error) {
	if u == nil || u.orders == nil {
		return orderdom.Order{}, errors.New("order usecase is not configured")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return orderdom.Order{}, ErrUnauthorized
	}

	o := orderdom.NewOrder(u.newID(), userID, productIDs, u.now())
	if err := u.orders.Create(ctx, o); err != nil {
		return orderdom.Order{}, fmt.Errorf("order: create: %w", err)
	}
	log.Printf("[order_usecase] order placed id=%s userId=%s products=%d", o.ID, userID, len(o.ProductIDs))

	// Best-effort notification. Logged, never surfaced: the order is already
	// persisted and mail delivery must not fail the placement.
	userEmail = strings.TrimSpace(userEmail)
	if userEmail != "" && u.mailer != nil {
		if err := u.mailer.SendOrderConfirmation(ctx, userEmail, o); err != nil {
			log.Printf("[order_usecase] confirmation mail failed orderId=%s err=%v", o.ID, err)
		}
	}

	return o, nil
}

// ListOrders returns the user's orders with each productId resolved to its
// product. Result order inside an order follows productIds, not lookup
// completion order.
func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) (OrderListView, error) {
	if u == nil || u.orders == nil || u.products == nil {
		return OrderListView{}, errors.New("order usecase is not configured")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return OrderListView{}, ErrUnauthorized
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return OrderListView{}, fmt.Errorf("order: list: %w", err)
	}

	view := OrderListView{UserID: userID, Orders: []OrderView{}}
	for _, o := range orders {
		ov := OrderView{
			ID:         o.ID,
			UserID:     o.UserID,
			ProductIDs: o.ProductIDs,
			OrderedAt:  o.OrderedAt,
			Products:   []OrderProductView{},
		}

		if len(o.ProductIDs) > 0 {
			resolved, err := u.products.GetMany(ctx, o.ProductIDs)
			if err != nil {
				return OrderListView{}, fmt.Errorf("order: resolve products: %w", err)
			}
			for i, pid := range o.ProductIDs {
				pv := OrderProductView{ProductID: pid}
				if i < len(resolved) && resolved[i] != nil {
					pv.Product = resolved[i]
				} else {
					pv.Unresolved = true
				}
				ov.Products = append(ov.Products, pv)
			}
		}

		view.Orders = append(view.Orders, ov)
	}
	return view, nil
}
