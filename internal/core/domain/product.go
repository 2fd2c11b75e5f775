package domain

import (
	"errors"
	"time"
)

// DateLayout renders dates the way the zh-TW locale does ("2025/1/15").
const DateLayout = "2006/1/2"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptySessionID  = errors.New("empty session id")
)

type (
	// A Product is immutable once seeded.
	//
	// Price is in the smallest currency unit.
	Product struct {
		ID          int
		Name        string
		Price       int
		Image       string
		Description string
		Category    string
	}

	CartItem struct {
		Product  Product
		Quantity int
	}

	// An Order is a snapshot of the cart taken at checkout.
	Order struct {
		ID        string
		Items     []CartItem
		Total     int
		Date      string
		CreatedAt time.Time
	}
)

func (i CartItem) Subtotal() int {
	return i.Product.Price * i.Quantity
}

// ItemCount returns the sum of quantities across the order lines.
func (o Order) ItemCount() int {
	var n int
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
