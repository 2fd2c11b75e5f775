package port

import (
	"context"

	"github.com/niksmo/shopping-site/internal/core/domain"
)

type CatalogBrowser interface {
	Catalog(ctx context.Context, sessionID string) (domain.CatalogView, error)
	SetCategory(ctx context.Context, sessionID, category string) (domain.CatalogView, error)
	SetPriceRange(ctx context.Context, sessionID, label string) (domain.CatalogView, error)
	ClearFilters(ctx context.Context, sessionID string) (domain.CatalogView, error)
}

type CartEditor interface {
	Cart(ctx context.Context, sessionID string) (domain.CartView, error)
	AddToCart(ctx context.Context, sessionID string, productID int) (domain.CartView, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int) (domain.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (domain.CartView, error)
}

type OrderPlacer interface {
	Checkout(ctx context.Context, sessionID string) (domain.Order, bool, error)
	Orders(ctx context.Context, sessionID string) ([]domain.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, sessionID string, o domain.Order) error
}

type OrderArchive interface {
	StoreOrder(ctx context.Context, sessionID string, o domain.Order) error
}

// Storefront is everything a shopper can do in a session.
type Storefront interface {
	CatalogBrowser
	CartEditor
	OrderPlacer
}
