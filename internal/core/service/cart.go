package service

import (
	"slices"

	"github.com/niksmo/shopping-site/internal/core/domain"
)

// AddToCart puts one more unit of p into the cart. A product seen for the
// first time is appended as a new line.
func (s *Session) AddToCart(p domain.Product) {
	if i := s.cartIndex(p.ID); i >= 0 {
		s.cart[i].Quantity++
		return
	}
	s.cart = append(s.cart, domain.CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart drops the line of the product. Reports whether a line was
// removed.
func (s *Session) RemoveFromCart(productID int) bool {
	i := s.cartIndex(productID)
	if i < 0 {
		return false
	}
	s.cart = slices.Delete(s.cart, i, i+1)
	return true
}

// UpdateQuantity sets the quantity of an existing line. A quantity below one
// removes the line. Reports whether the cart changed.
func (s *Session) UpdateQuantity(productID, quantity int) bool {
	if quantity <= 0 {
		return s.RemoveFromCart(productID)
	}
	i := s.cartIndex(productID)
	if i < 0 {
		return false
	}
	s.cart[i].Quantity = quantity
	return true
}

func (s *Session) CartItems() []domain.CartItem {
	return slices.Clone(s.cart)
}

func (s *Session) CartTotal() int {
	var total int
	for _, item := range s.cart {
		total += item.Subtotal()
	}
	return total
}

// CartItemCount sums quantities, not lines.
func (s *Session) CartItemCount() int {
	var n int
	for _, item := range s.cart {
		n += item.Quantity
	}
	return n
}

func (s *Session) cartIndex(productID int) int {
	return slices.IndexFunc(s.cart, func(item domain.CartItem) bool {
		return item.Product.ID == productID
	})
}
