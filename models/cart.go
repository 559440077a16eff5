package models

// CartItem is a storefront cart line. Cart and wishlist live only in the
// local cache; they are never written to the remote store.
type CartItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartTotal sums price*quantity over the cart.
func CartTotal(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
