package domain

import "strings"

// PriceCategoryMarker marks a category label that heads the price-range
// section of the filter menu rather than naming a product category.
const PriceCategoryMarker = "價格"

type FilterKind int

const (
	NoFilter FilterKind = iota
	ByCategory
	ByPriceRange
)

func (k FilterKind) String() string {
	switch k {
	case ByCategory:
		return "category"
	case ByPriceRange:
		return "price_range"
	default:
		return "none"
	}
}

// A PriceBucket is an inclusive price interval.
type PriceBucket struct {
	Label     string
	Min       int
	Max       int
	Unbounded bool
}

func (b PriceBucket) Contains(price int) bool {
	if price < b.Min {
		return false
	}
	return b.Unbounded || price <= b.Max
}

var priceBuckets = []PriceBucket{
	{Label: "10000-19999", Min: 10000, Max: 19999},
	{Label: "20000-29999", Min: 20000, Max: 29999},
	{Label: "30000+", Min: 30000, Unbounded: true},
}

// PriceBuckets returns the recognised price ranges in menu order.
func PriceBuckets() []PriceBucket {
	bs := make([]PriceBucket, len(priceBuckets))
	copy(bs, priceBuckets)
	return bs
}

func LookupPriceBucket(label string) (PriceBucket, bool) {
	for _, b := range priceBuckets {
		if b.Label == label {
			return b, true
		}
	}
	return PriceBucket{}, false
}

// IsPriceCategory reports whether a category label is a price-range
// pseudo-category.
func IsPriceCategory(label string) bool {
	return strings.Contains(label, PriceCategoryMarker)
}

// A Filter selects at most one of a category or a price range.
//
// The zero value selects nothing.
type Filter struct {
	kind     FilterKind
	category string
	rng      string
	bucket   PriceBucket
	known    bool
}

func CategoryFilter(category string) Filter {
	if category == "" {
		return Filter{}
	}
	return Filter{kind: ByCategory, category: category}
}

// PriceRangeFilter selects a price range by its label. An unrecognised label
// is kept as the selection but matches every product.
func PriceRangeFilter(label string) Filter {
	if label == "" {
		return Filter{}
	}
	b, ok := LookupPriceBucket(label)
	return Filter{kind: ByPriceRange, rng: label, bucket: b, known: ok}
}

// WithPriceHeader selects a price-section header as the category. The
// header filters nothing by itself and keeps an active price range.
func (f Filter) WithPriceHeader(label string) Filter {
	if f.kind != ByPriceRange {
		f = Filter{}
	}
	f.category = label
	return f
}

func (f Filter) Kind() FilterKind {
	return f.kind
}

func (f Filter) SelectedCategory() string {
	return f.category
}

func (f Filter) SelectedPriceRange() string {
	return f.rng
}

// Bucket returns the selected price bucket, false when no recognised price
// range is selected.
func (f Filter) Bucket() (PriceBucket, bool) {
	return f.bucket, f.kind == ByPriceRange && f.known
}

func (f Filter) Match(p Product) bool {
	switch f.kind {
	case ByCategory:
		return p.Category == f.category
	case ByPriceRange:
		if !f.known {
			return true
		}
		return f.bucket.Contains(p.Price)
	default:
		return true
	}
}

// Apply returns the matching products in their original order. The input
// slice is never modified.
func (f Filter) Apply(ps []Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
