package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/internal/core/port"
)

var _ port.Storefront = (*Service)(nil)

type Config struct {
	// IdleTimeout discards sessions unused for that long. Zero keeps
	// sessions for the process lifetime.
	IdleTimeout time.Duration
	SessionOpts []SessionOpt
}

// Service gives every session id its own [Session] and forwards placed
// orders to the outbound ports. Both ports are optional.
type Service struct {
	sessions       *registry
	idleTimeout    time.Duration
	orderPublisher port.OrderPublisher
	orderArchive   port.OrderArchive
}

func New(
	config Config,
	orderPublisher port.OrderPublisher,
	orderArchive port.OrderArchive,
) *Service {
	newSession := func() *Session {
		return NewSession(config.SessionOpts...)
	}
	return &Service{
		sessions:       newRegistry(newSession, time.Now),
		idleTimeout:    config.IdleTimeout,
		orderPublisher: orderPublisher,
		orderArchive:   orderArchive,
	}
}

// Run starts evicting idle sessions until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if s.idleTimeout <= 0 {
		return
	}
	go s.runJanitor(ctx)
}

func (s *Service) runJanitor(ctx context.Context) {
	const op = "Service.runJanitor"
	log := slog.With("op", op)

	ticker := time.NewTicker(janitorInterval(s.idleTimeout))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.evictIdle(s.idleTimeout); n != 0 {
				log.Info("idle sessions evicted", "n", n)
			}
		}
	}
}

// minJanitorInterval bounds how often idle sessions are swept.
const minJanitorInterval = time.Millisecond

func janitorInterval(idleTimeout time.Duration) time.Duration {
	return max(idleTimeout/2, minJanitorInterval)
}

func (s *Service) Catalog(
	ctx context.Context, sessionID string,
) (domain.CatalogView, error) {
	const op = "Service.Catalog"
	return s.catalogView(ctx, op, sessionID, func(*Session) {})
}

func (s *Service) SetCategory(
	ctx context.Context, sessionID, category string,
) (domain.CatalogView, error) {
	const op = "Service.SetCategory"
	return s.catalogView(ctx, op, sessionID, func(ss *Session) {
		ss.SetCategory(category)
	})
}

func (s *Service) SetPriceRange(
	ctx context.Context, sessionID, label string,
) (domain.CatalogView, error) {
	const op = "Service.SetPriceRange"
	return s.catalogView(ctx, op, sessionID, func(ss *Session) {
		ss.SetPriceRange(label)
	})
}

func (s *Service) ClearFilters(
	ctx context.Context, sessionID string,
) (domain.CatalogView, error) {
	const op = "Service.ClearFilters"
	return s.catalogView(ctx, op, sessionID, func(ss *Session) {
		ss.ClearFilters()
	})
}

func (s *Service) Cart(
	ctx context.Context, sessionID string,
) (domain.CartView, error) {
	const op = "Service.Cart"
	return s.cartView(ctx, op, sessionID, func(*Session) error { return nil })
}

func (s *Service) AddToCart(
	ctx context.Context, sessionID string, productID int,
) (domain.CartView, error) {
	const op = "Service.AddToCart"
	return s.cartView(ctx, op, sessionID, func(ss *Session) error {
		p, ok := ss.Product(productID)
		if !ok {
			return domain.ErrProductNotFound
		}
		ss.AddToCart(p)
		return nil
	})
}

func (s *Service) RemoveFromCart(
	ctx context.Context, sessionID string, productID int,
) (domain.CartView, error) {
	const op = "Service.RemoveFromCart"
	return s.cartView(ctx, op, sessionID, func(ss *Session) error {
		if !ss.RemoveFromCart(productID) {
			slog.Debug("not in cart", "op", op, "productID", productID)
		}
		return nil
	})
}

func (s *Service) UpdateQuantity(
	ctx context.Context, sessionID string, productID, quantity int,
) (domain.CartView, error) {
	const op = "Service.UpdateQuantity"
	return s.cartView(ctx, op, sessionID, func(ss *Session) error {
		if !ss.UpdateQuantity(productID, quantity) {
			slog.Debug("not in cart", "op", op, "productID", productID)
		}
		return nil
	})
}

// Checkout places the order of the session. It returns false when the cart
// is empty.
//
// Outbound port failures are logged, the order stays recorded.
func (s *Service) Checkout(
	ctx context.Context, sessionID string,
) (domain.Order, bool, error) {
	const op = "Service.Checkout"

	if err := s.check(ctx, sessionID); err != nil {
		return domain.Order{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var (
		order domain.Order
		ok    bool
	)
	s.sessions.with(sessionID, func(ss *Session) {
		order, ok = ss.Checkout()
	})
	if !ok {
		return domain.Order{}, false, nil
	}

	slog.Info("order placed",
		"op", op, "orderID", order.ID,
		"items", order.ItemCount(), "total", order.Total,
	)

	s.exportOrder(ctx, sessionID, order)
	return order, true, nil
}

func (s *Service) Orders(
	ctx context.Context, sessionID string,
) ([]domain.Order, error) {
	const op = "Service.Orders"

	if err := s.check(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var orders []domain.Order
	s.sessions.with(sessionID, func(ss *Session) {
		orders = ss.Orders()
	})
	return orders, nil
}

func (s *Service) exportOrder(
	ctx context.Context, sessionID string, order domain.Order,
) {
	const op = "Service.exportOrder"
	log := slog.With("op", op, "orderID", order.ID)

	if s.orderArchive != nil {
		if err := s.orderArchive.StoreOrder(ctx, sessionID, order); err != nil {
			log.Error("failed to archive order", "err", err)
		}
	}

	if s.orderPublisher != nil {
		if err := s.orderPublisher.PublishOrder(ctx, sessionID, order); err != nil {
			log.Error("failed to publish order", "err", err)
		}
	}
}

func (s *Service) check(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessionID == "" {
		return domain.ErrEmptySessionID
	}
	return nil
}

func (s *Service) catalogView(
	ctx context.Context, op, sessionID string, fn func(*Session),
) (domain.CatalogView, error) {
	if err := s.check(ctx, sessionID); err != nil {
		return domain.CatalogView{}, fmt.Errorf("%s: %w", op, err)
	}

	var v domain.CatalogView
	s.sessions.with(sessionID, func(ss *Session) {
		fn(ss)
		v = domain.CatalogView{
			Products:   ss.Products(),
			Filtered:   ss.FilteredProducts(),
			Categories: ss.Categories(),
			Filter:     ss.Filter(),
		}
	})
	return v, nil
}

func (s *Service) cartView(
	ctx context.Context, op, sessionID string, fn func(*Session) error,
) (domain.CartView, error) {
	if err := s.check(ctx, sessionID); err != nil {
		return domain.CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		v   domain.CartView
		err error
	)
	s.sessions.with(sessionID, func(ss *Session) {
		err = fn(ss)
		v = domain.CartView{
			Items:     ss.CartItems(),
			Total:     ss.CartTotal(),
			ItemCount: ss.CartItemCount(),
		}
	})
	if err != nil {
		return v, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
