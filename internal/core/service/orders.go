package service

import (
	"slices"

	"github.com/niksmo/shopping-site/internal/core/domain"
)

// Checkout turns the cart into an order, appends it to the history and
// empties the cart. It returns false and changes nothing when the cart is
// empty.
func (s *Session) Checkout() (domain.Order, bool) {
	if len(s.cart) == 0 {
		return domain.Order{}, false
	}

	now := s.now()
	order := domain.Order{
		ID:        s.newOrderID(),
		Items:     slices.Clone(s.cart),
		Total:     s.CartTotal(),
		Date:      now.Format(domain.DateLayout),
		CreatedAt: now,
	}

	s.orders = append(s.orders, order)
	s.cart = nil

	return cloneOrder(order), true
}

// Orders returns the order history, oldest first.
func (s *Session) Orders() []domain.Order {
	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
