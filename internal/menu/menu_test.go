package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cape/internal/delivery"
	"cape/internal/models"
)

func TestItemsAreValid(t *testing.T) {
	all := Items()
	require.NotEmpty(t, all)

	summary := models.ValidateMenuItems(all)
	assert.True(t, summary.IsValid, "invalid items at %v", summary.InvalidItems)
	assert.Equal(t, len(all), summary.ValidCount)

	// Every published price must parse to a positive amount.
	for _, item := range all {
		assert.Greater(t, delivery.ParsePrice(item.Price), 0.0, "item %d %q", item.ID, item.Price)
	}
}

func TestFullCatalogue(t *testing.T) {
	all := Items()
	require.Len(t, all, 64)

	// IDs run 1..64 without gaps, grouped by category in publish order.
	for i, item := range all {
		assert.Equal(t, i+1, item.ID)
	}

	counts := map[string]int{}
	for _, item := range all {
		counts[item.Category]++
	}
	assert.Equal(t, map[string]int{
		"appetizers":   10,
		"salads":       7,
		"soups":        7,
		"main-courses": 9,
		"dumplings":    3,
		"pastas":       4,
		"pizzas":       6,
		"breads":       2,
		"sushis":       12,
		"desserts":     4,
	}, counts)

	cheesecake, ok := ByID(63)
	require.True(t, ok)
	assert.Equal(t, "«Солнце Азии» Чизкейк", cheesecake.Name)
	assert.Equal(t, "790.-", cheesecake.Price)

	stroganina, ok := ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Строганина из пеламиды", stroganina.Name)
	assert.Equal(t, "appetizers", stroganina.Category)
}

func TestItemIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, item := range Items() {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	pizzas := ByCategory("pizzas")
	require.NotEmpty(t, pizzas)
	for _, item := range pizzas {
		assert.Equal(t, "pizzas", item.Category)
	}

	assert.Empty(t, ByCategory("burgers"))
}

func TestEveryCategoryHasItems(t *testing.T) {
	for _, category := range Categories {
		assert.NotEmpty(t, ByCategory(category), category)
	}
}

func TestByID(t *testing.T) {
	item, ok := ByID(41)
	require.True(t, ok)
	assert.Equal(t, "Маргарита", item.Name)

	_, ok = ByID(9999)
	assert.False(t, ok)
}

func TestIsKnownCategory(t *testing.T) {
	assert.True(t, IsKnownCategory("soups"))
	assert.False(t, IsKnownCategory("soup"))
	assert.False(t, IsKnownCategory(""))
}

func TestUniqueCategories(t *testing.T) {
	categories := UniqueCategories(Items())
	assert.ElementsMatch(t, Categories, categories)
	assert.Empty(t, UniqueCategories(nil))
}

func TestValidateMenuItemsReportsBadEntries(t *testing.T) {
	bad := []models.MenuItem{
		{ID: 1, Name: "ok", Weight: "100 г", Price: "100.-", ImageURL: "/a.jpg", Category: "soups"},
		{ID: 0, Name: "", Weight: "", Price: "", ImageURL: "", Category: ""},
	}
	summary := models.ValidateMenuItems(bad)
	assert.False(t, summary.IsValid)
	assert.Equal(t, []int{1}, summary.InvalidItems)
	assert.Equal(t, 1, summary.ValidCount)
	assert.Equal(t, 2, summary.TotalCount)
}
