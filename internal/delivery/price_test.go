package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cape/internal/models"
)

var testMenuItem = models.MenuItem{
	ID:       1,
	Name:     "Тартар из говядины по-азиатски",
	Weight:   "170 г",
	Price:    "500.-",
	ImageURL: "/assets/appetizers-1.jpg",
	Category: "appetizers",
}

var testMenuItem2 = models.MenuItem{
	ID:       2,
	Name:     "Паштет из куриной печени",
	Weight:   "220 г",
	Price:    "350.-",
	ImageURL: "/assets/appetizers-3.jpg",
	Category: "appetizers",
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"500.-", 500},
		{"1,200.-", 1200},
		{"350.-", 350},
		{"2,500.-", 2500},
		{"500", 500},
		{"500-", 500},
		{"500 руб", 500},
		{"1,200 руб.", 1200},
		{"12,5", 12.5},
		{"", 0},
		{"invalid", 0},
		{"abc.-", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.input), "ParsePrice(%q)", tt.input)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "500.-", FormatPrice(500))
	assert.Equal(t, "1 200.-", FormatPrice(1200))
	assert.Equal(t, "2 500.-", FormatPrice(2500))
	assert.Equal(t, "1 234 567.-", FormatPrice(1234567))
	assert.Equal(t, "0.-", FormatPrice(0))
}

func TestParsePriceRoundTrip(t *testing.T) {
	for _, n := range []float64{0, 1, 12, 500, 999, 1000, 1350, 2000, 99999, 1234567} {
		assert.Equal(t, n, ParsePrice(FormatPrice(n)), "round trip %v", n)
	}
}

func TestCalculateItemSubtotal(t *testing.T) {
	assert.Equal(t, 500.0, CalculateItemSubtotal(testMenuItem, 1))
	assert.Equal(t, 1000.0, CalculateItemSubtotal(testMenuItem, 2))
	assert.Equal(t, 1050.0, CalculateItemSubtotal(testMenuItem2, 3))
}

func TestNewCartItem(t *testing.T) {
	item := NewCartItem(testMenuItem, 2)
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 1000.0, item.Subtotal)
	assert.Equal(t, testMenuItem, item.MenuItem)
}

func TestWithQuantity(t *testing.T) {
	item := NewCartItem(testMenuItem, 2)
	updated := WithQuantity(item, 3)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, 1500.0, updated.Subtotal)
	assert.Equal(t, item.ID, updated.ID)
	// original line untouched
	assert.Equal(t, 2, item.Quantity)
}

func TestCalculateSubtotal(t *testing.T) {
	items := []models.CartItem{
		NewCartItem(testMenuItem, 2),
		NewCartItem(testMenuItem2, 1),
	}
	assert.Equal(t, 1350.0, CalculateSubtotal(items))
	assert.Equal(t, 0.0, CalculateSubtotal(nil))
	assert.Equal(t, 1000.0, CalculateSubtotal(items[:1]))
}

func TestCalculateDeliveryFee(t *testing.T) {
	assert.Equal(t, 300.0, CalculateDeliveryFee(1000))
	assert.Equal(t, 300.0, CalculateDeliveryFee(1999))
	assert.Equal(t, 300.0, CalculateDeliveryFee(500))
	assert.Equal(t, 0.0, CalculateDeliveryFee(2000))
	assert.Equal(t, 0.0, CalculateDeliveryFee(2500))
	assert.Equal(t, 0.0, CalculateDeliveryFee(5000))
	assert.Equal(t, 300.0, CalculateDeliveryFee(0))
	assert.Equal(t, 300.0, CalculateDeliveryFee(-100))
}

func TestCalculateTotal(t *testing.T) {
	assert.Equal(t, 1300.0, CalculateTotal(1000, 300))
	assert.Equal(t, 2000.0, CalculateTotal(2000, 0))
	assert.Equal(t, 1800.0, CalculateTotal(1500, 300))
	assert.Equal(t, 0.0, CalculateTotal(0, 0))
}

func TestIsMinimumOrderMet(t *testing.T) {
	assert.False(t, IsMinimumOrderMet(499))
	assert.True(t, IsMinimumOrderMet(500))
	assert.True(t, IsMinimumOrderMet(501))
	assert.False(t, IsMinimumOrderMet(0))
}

func TestFreeDeliveryRemaining(t *testing.T) {
	assert.Equal(t, 650.0, CalculateFreeDeliveryRemaining(1350))
	assert.Equal(t, 0.0, CalculateFreeDeliveryRemaining(2000))
	assert.Equal(t, 0.0, CalculateFreeDeliveryRemaining(5000))
	assert.Equal(t, 2000.0, CalculateFreeDeliveryRemaining(0))
}

func TestFreeDeliveryProgress(t *testing.T) {
	assert.Equal(t, 0.0, CalculateFreeDeliveryProgress(0))
	assert.Equal(t, 50.0, CalculateFreeDeliveryProgress(1000))
	assert.Equal(t, 100.0, CalculateFreeDeliveryProgress(2000))
	assert.Equal(t, 100.0, CalculateFreeDeliveryProgress(9000))
	assert.Equal(t, 0.0, CalculateFreeDeliveryProgress(-500))

	// monotonically non-decreasing
	prev := -1.0
	for s := 0.0; s <= 3000; s += 100 {
		p := CalculateFreeDeliveryProgress(s)
		assert.GreaterOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
		prev = p
	}
}

func TestIsFreeDeliveryEligible(t *testing.T) {
	assert.False(t, IsFreeDeliveryEligible(1350))
	assert.True(t, IsFreeDeliveryEligible(2000))
	assert.True(t, IsFreeDeliveryEligible(2001))
}

// The worked example from the order summary: two positions at 500.- x2
// and 350.- x1.
func TestOrderSummaryExample(t *testing.T) {
	items := []models.CartItem{
		NewCartItem(testMenuItem, 2),
		NewCartItem(testMenuItem2, 1),
	}
	subtotal := CalculateSubtotal(items)
	fee := CalculateDeliveryFee(subtotal)
	assert.Equal(t, 1350.0, subtotal)
	assert.Equal(t, 300.0, fee)
	assert.Equal(t, 1650.0, CalculateTotal(subtotal, fee))
	assert.False(t, IsFreeDeliveryEligible(subtotal))
	assert.Equal(t, 650.0, CalculateFreeDeliveryRemaining(subtotal))
}

func TestValidateCustomerInfo(t *testing.T) {
	valid := models.CustomerInfo{
		Name:    "Иван Петров",
		Phone:   "+7 921 123-45-67",
		Address: "Кронштадт, ул. Коммунистическая д. 14, кв. 5",
	}
	assert.Empty(t, ValidateCustomerInfo(valid))

	errs := ValidateCustomerInfo(models.CustomerInfo{Name: "И", Phone: "123", Address: "кв. 5"})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "address")
}
