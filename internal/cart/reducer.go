// Package cart implements the in-memory cart: a small reducer over an
// ordered list of line items keyed by menu item id, a session object
// that adds notifications and persistence around it, and the sqlite
// store behind it.
package cart

import (
	"cape/internal/delivery"
	"cape/internal/models"
)

// addItem appends the menu item, or bumps its quantity when already
// present. The second return reports whether anything changed.
func addItem(state []models.CartItem, item models.MenuItem) ([]models.CartItem, bool) {
	for i, existing := range state {
		if existing.ID != item.ID {
			continue
		}
		quantity := existing.Quantity + 1
		if quantity > delivery.MaxQuantityPerItem {
			quantity = delivery.MaxQuantityPerItem
		}
		next := make([]models.CartItem, len(state))
		copy(next, state)
		next[i] = delivery.WithQuantity(existing, quantity)
		return next, quantity != existing.Quantity
	}

	if len(state) >= delivery.MaxItemsInCart {
		return state, false
	}
	return append(append([]models.CartItem{}, state...), delivery.NewCartItem(item, 1)), true
}

// removeItem drops the line with the given id, if present.
func removeItem(state []models.CartItem, id int) ([]models.CartItem, bool) {
	next := make([]models.CartItem, 0, len(state))
	for _, item := range state {
		if item.ID != id {
			next = append(next, item)
		}
	}
	return next, len(next) != len(state)
}

// updateQuantity sets a line's quantity, clamped to the per-item cap. A
// quantity of zero or less removes the line.
func updateQuantity(state []models.CartItem, id, quantity int) ([]models.CartItem, bool) {
	if quantity <= 0 {
		return removeItem(state, id)
	}
	if quantity > delivery.MaxQuantityPerItem {
		quantity = delivery.MaxQuantityPerItem
	}

	for i, item := range state {
		if item.ID != id {
			continue
		}
		if item.Quantity == quantity {
			return state, false
		}
		next := make([]models.CartItem, len(state))
		copy(next, state)
		next[i] = delivery.WithQuantity(item, quantity)
		return next, true
	}
	return state, false
}
