package service

import "github.com/niksmo/shopping-site/internal/core/domain"

// Products returns the whole catalog in seed order.
func (s *Session) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

func (s *Session) Product(id int) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Categories returns the distinct product categories in order of first
// appearance.
func (s *Session) Categories() []string {
	seen := make(map[string]struct{})
	var cs []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cs = append(cs, p.Category)
	}
	return cs
}

func (s *Session) Filter() domain.Filter {
	return s.filter
}

// SetCategory selects a category filter and drops the price range.
//
// A price-range pseudo-category heads the price section of the filter menu.
// It is remembered as the selected category, filters nothing and leaves the
// active price range in place.
func (s *Session) SetCategory(category string) {
	if domain.IsPriceCategory(category) {
		s.filter = s.filter.WithPriceHeader(category)
		return
	}
	s.filter = domain.CategoryFilter(category)
}

// SetPriceRange selects a price range filter and drops the category.
func (s *Session) SetPriceRange(label string) {
	s.filter = domain.PriceRangeFilter(label)
}

func (s *Session) ClearFilters() {
	s.filter = domain.Filter{}
}

// FilteredProducts applies the current filter to the catalog.
func (s *Session) FilteredProducts() []domain.Product {
	return s.filter.Apply(s.products)
}
