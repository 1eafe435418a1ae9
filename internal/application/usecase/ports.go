// internal/application/usecase/ports.go
package usecase

import (
	"context"

	orderdom "storefront/internal/domain/order"
)

// OrderMailer sends the order-confirmation email. Implementations live in
// adapters/out/mail; delivery is best-effort and the caller swallows errors.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error
}

// Subscriber subscribes an email address to the marketing topic. The upstream
// sends its own confirmation mail, so success only means "request accepted".
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}
