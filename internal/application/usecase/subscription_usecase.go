// internal/application/usecase/subscription_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// SubscriptionUsecase forwards newsletter sign-ups to the subscription
// service. Fire-and-forget: the upstream runs its own opt-in confirmation.
type SubscriptionUsecase struct {
	subscriber Subscriber
}

func NewSubscriptionUsecase(subscriber Subscriber) *SubscriptionUsecase {
	return &SubscriptionUsecase{subscriber: subscriber}
}

// Subscribe validates the address and hands it to the subscription service.
func (u *SubscriptionUsecase) Subscribe(ctx context.Context, email string) error {
	if u == nil || u.subscriber == nil {
		return errors.New("subscription usecase is not configured")
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid or missing email", ErrInvalidArgument)
	}

	if err := u.subscriber.Subscribe(ctx, email); err != nil {
		return fmt.Errorf("subscription: subscribe: %w", err)
	}
	return nil
}
