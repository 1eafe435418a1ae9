// internal/platform/di/container.go
package di

import (
	"context"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/handlers"
	fsrepo "storefront/internal/adapters/out/firestore"
	"storefront/internal/adapters/out/mail"
	"storefront/internal/application/usecase"
	appcfg "storefront/internal/infra/config"
)

// Container wires repositories, usecases and handlers on top of Infra.
type Container struct {
	Config *appcfg.Config

	infra *Infra

	Catalog      *usecase.CatalogUsecase
	Cart         *usecase.CartUsecase
	Order        *usecase.OrderUsecase
	Subscription *usecase.SubscriptionUsecase
}

// NewContainer builds the full dependency graph.
func NewContainer(ctx context.Context) (*Container, error) {
	infra, err := NewInfra(ctx)
	if err != nil {
		return nil, err
	}

	productRepo := fsrepo.NewProductRepositoryFS(infra.Firestore)
	cartRepo := fsrepo.NewCartRepositoryFS(infra.Firestore)
	cartItemRepo := fsrepo.NewCartItemRepositoryFS(infra.Firestore)
	orderRepo := fsrepo.NewOrderRepositoryFS(infra.Firestore)

	mailClient := mail.NewSendGridClient(infra.Config.SendGridAPIKey)
	orderMailer := mail.NewOrderMailer(mailClient, infra.Config.MailFromAddress)
	subscriber := mail.NewContactsSubscriber(infra.Config.SendGridAPIKey, infra.Config.SubscriptionListID)

	return &Container{
		Config: infra.Config,
		infra:  infra,

		Catalog:      usecase.NewCatalogUsecase(productRepo),
		Cart:         usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo),
		Order:        usecase.NewOrderUsecase(orderRepo, productRepo, orderMailer),
		Subscription: usecase.NewSubscriptionUsecase(subscriber),
	}, nil
}

// RouterDeps returns the handler set for httpin.NewRouter.
func (c *Container) RouterDeps() httpin.Deps {
	return httpin.Deps{
		FirebaseAuth: c.infra.FirebaseAuth,

		Product:      handlers.NewProductHandler(c.Catalog),
		Search:       handlers.NewSearchHandler(c.Catalog),
		Category:     handlers.NewCategoryHandler(c.Catalog),
		Cart:         handlers.NewCartHandler(c.Cart),
		Order:        handlers.NewOrderHandler(c.Order),
		Subscription: handlers.NewSubscriptionHandler(c.Subscription),
	}
}

// Close releases infra resources.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.infra.Close()
}
