package menu

import "cape/internal/models"

// Items returns a copy of the full menu.
func Items() []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}

// ByCategory returns the menu items of one category, in menu order.
// Unknown categories yield an empty slice.
func ByCategory(category string) []models.MenuItem {
	return FilterByCategory(items, category)
}

// ByID looks a menu item up by its id.
func ByID(id int) (models.MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// IsKnownCategory reports whether the category is published.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// FilterByCategory keeps the items of one category, preserving order.
func FilterByCategory(items []models.MenuItem, category string) []models.MenuItem {
	out := []models.MenuItem{}
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// UniqueCategories lists the distinct categories present in a slice, in
// first-seen order.
func UniqueCategories(items []models.MenuItem) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
