package httphandler

import (
	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/pkg/currency"
)

type (
	CategoryRequest struct {
		Category string `json:"category"`
	}

	PriceRangeRequest struct {
		PriceRange string `json:"price_range"`
	}

	AddItemRequest struct {
		ProductID int `json:"product_id"`
	}

	QuantityRequest struct {
		Quantity *int `json:"quantity"`
	}
)

type (
	Product struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Price        int    `json:"price"`
		PriceDisplay string `json:"price_display"`
		Image        string `json:"image"`
		Description  string `json:"description"`
		Category     string `json:"category"`
	}

	FilterState struct {
		Kind       string `json:"kind"`
		Category   string `json:"category,omitempty"`
		PriceRange string `json:"price_range,omitempty"`
	}

	Catalog struct {
		Products    []Product   `json:"products"`
		Total       int         `json:"total"`
		Categories  []string    `json:"categories"`
		PriceRanges []string    `json:"price_ranges"`
		Filter      FilterState `json:"filter"`
	}

	CartItem struct {
		Product         Product `json:"product"`
		Quantity        int     `json:"quantity"`
		Subtotal        int     `json:"subtotal"`
		SubtotalDisplay string  `json:"subtotal_display"`
	}

	Cart struct {
		Items        []CartItem `json:"items"`
		ItemCount    int        `json:"item_count"`
		Total        int        `json:"total"`
		TotalDisplay string     `json:"total_display"`
	}

	Order struct {
		ID           string     `json:"id"`
		Items        []CartItem `json:"items"`
		ItemCount    int        `json:"item_count"`
		Total        int        `json:"total"`
		TotalDisplay string     `json:"total_display"`
		Date         string     `json:"date"`
	}
)

func fromProduct(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: currency.TWD.Format(p.Price),
		Image:        p.Image,
		Description:  p.Description,
		Category:     p.Category,
	}
}

func fromProducts(ps []domain.Product) []Product {
	res := make([]Product, len(ps))
	for i, p := range ps {
		res[i] = fromProduct(p)
	}
	return res
}

func fromCartItems(items []domain.CartItem) []CartItem {
	res := make([]CartItem, len(items))
	for i, it := range items {
		sub := it.Subtotal()
		res[i] = CartItem{
			Product:         fromProduct(it.Product),
			Quantity:        it.Quantity,
			Subtotal:        sub,
			SubtotalDisplay: currency.TWD.Format(sub),
		}
	}
	return res
}

func fromCatalogView(v domain.CatalogView) Catalog {
	buckets := domain.PriceBuckets()
	ranges := make([]string, len(buckets))
	for i, b := range buckets {
		ranges[i] = b.Label
	}

	return Catalog{
		Products:    fromProducts(v.Filtered),
		Total:       len(v.Products),
		Categories:  v.Categories,
		PriceRanges: ranges,
		Filter: FilterState{
			Kind:       v.Filter.Kind().String(),
			Category:   v.Filter.SelectedCategory(),
			PriceRange: v.Filter.SelectedPriceRange(),
		},
	}
}

func fromCartView(v domain.CartView) Cart {
	return Cart{
		Items:        fromCartItems(v.Items),
		ItemCount:    v.ItemCount,
		Total:        v.Total,
		TotalDisplay: currency.TWD.Format(v.Total),
	}
}

func fromOrder(o domain.Order) Order {
	return Order{
		ID:           o.ID,
		Items:        fromCartItems(o.Items),
		ItemCount:    o.ItemCount(),
		Total:        o.Total,
		TotalDisplay: currency.TWD.Format(o.Total),
		Date:         o.Date,
	}
}
