package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/shopping-site/internal/core/domain"
)

// A Session holds the catalog, the cart and the order history of one shopper.
//
// A Session is not safe for concurrent use; [Service] serialises access to
// the sessions it owns.
type Session struct {
	products []domain.Product
	filter   domain.Filter
	cart     []domain.CartItem
	orders   []domain.Order

	newOrderID func() string
	now        func() time.Time
}

type SessionOpt func(*Session)

// CatalogOpt replaces the seed catalog.
func CatalogOpt(ps []domain.Product) SessionOpt {
	return func(s *Session) {
		s.products = append([]domain.Product(nil), ps...)
	}
}

func OrderIDOpt(fn func() string) SessionOpt {
	return func(s *Session) {
		if fn != nil {
			s.newOrderID = fn
		}
	}
}

func ClockOpt(fn func() time.Time) SessionOpt {
	return func(s *Session) {
		if fn != nil {
			s.now = fn
		}
	}
}

func NewSession(opts ...SessionOpt) *Session {
	s := &Session{
		products:   domain.SeedCatalog(),
		newOrderID: uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
