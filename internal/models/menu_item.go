package models

import "fmt"

// MenuItem represents a dish on the menu. Reference data: seeded once,
// never mutated at runtime. Price is kept as the display string it is
// published with (e.g. "780.-"); numeric values are derived by the
// delivery package.
type MenuItem struct {
	ID          int    `json:"id" gorm:"primary_key"`
	Name        string `json:"name"`
	Composition string `json:"composition"`
	Legend      string `json:"legend"`
	Weight      string `json:"weight"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

// ValidateMenuItem checks that a menu item carries every required field.
func ValidateMenuItem(item *MenuItem) error {
	if item.ID <= 0 {
		return fmt.Errorf("menu item id must be positive")
	}
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Weight == "" {
		return fmt.Errorf("menu item weight is required")
	}
	if item.Price == "" {
		return fmt.Errorf("menu item price is required")
	}
	if item.ImageURL == "" {
		return fmt.Errorf("menu item image url is required")
	}
	if item.Category == "" {
		return fmt.Errorf("menu item category is required")
	}
	return nil
}

// MenuValidationSummary reports the outcome of validating a batch of
// menu items.
type MenuValidationSummary struct {
	IsValid      bool  `json:"isValid"`
	InvalidItems []int `json:"invalidItems"`
	ValidCount   int   `json:"validCount"`
	TotalCount   int   `json:"totalCount"`
}

// ValidateMenuItems validates every item and reports the indexes of the
// ones that failed.
func ValidateMenuItems(items []MenuItem) MenuValidationSummary {
	summary := MenuValidationSummary{
		InvalidItems: []int{},
		TotalCount:   len(items),
	}
	for i := range items {
		if err := ValidateMenuItem(&items[i]); err != nil {
			summary.InvalidItems = append(summary.InvalidItems, i)
		} else {
			summary.ValidCount++
		}
	}
	summary.IsValid = len(summary.InvalidItems) == 0
	return summary
}

// IsInCategory checks if the item belongs to a specific category.
func (mi *MenuItem) IsInCategory(category string) bool {
	return mi.Category == category
}
