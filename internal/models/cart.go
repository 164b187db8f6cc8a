package models

// CartItem is a line in the cart. ID mirrors the menu item id; Subtotal
// is always recomputed from quantity and the parsed unit price, never
// trusted from a stored copy.
type CartItem struct {
	ID       int      `json:"id"`
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
	Subtotal float64  `json:"subtotal"`
}

// CartState is the persisted shape of a cart. Version must match the
// current storage version or the whole record is discarded on load.
type CartState struct {
	Items       []CartItem `json:"items"`
	LastUpdated string     `json:"lastUpdated"`
	Version     int        `json:"version"`
}
