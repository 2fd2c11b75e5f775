package domain

type (
	// A CatalogView is what a shopper sees on the product list.
	CatalogView struct {
		Products   []Product
		Filtered   []Product
		Categories []string
		Filter     Filter
	}

	CartView struct {
		Items     []CartItem
		Total     int
		ItemCount int
	}
)
