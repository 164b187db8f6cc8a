package delivery

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"cape/internal/models"
)

var (
	nonPriceChars  = regexp.MustCompile(`[^\d,.-]`)
	thousandsComma = regexp.MustCompile(`,\d{3}$`)
)

// ParsePrice converts a published price string like "440.-" or "1,200.-"
// to a number. A comma followed by exactly three digits is a thousands
// separator; any other comma is a decimal point. Returns 0 when the
// string does not parse.
func ParsePrice(price string) float64 {
	clean := nonPriceChars.ReplaceAllString(price, "")
	clean = strings.TrimSuffix(clean, ".-")
	clean = strings.TrimSuffix(clean, "-")
	clean = strings.TrimSuffix(clean, ".")

	if thousandsComma.MatchString(clean) {
		clean = strings.Replace(clean, ",", "", 1)
	} else if strings.Contains(clean, ",") {
		clean = strings.Replace(clean, ",", ".", 1)
	}

	parsed, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// FormatPrice renders a number in the published format: space-grouped
// thousands and a trailing ".-", e.g. 1200 -> "1 200.-".
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := sign + b.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	return out + ".-"
}

// CalculateItemSubtotal computes price x quantity for a menu item.
func CalculateItemSubtotal(item models.MenuItem, quantity int) float64 {
	return ParsePrice(item.Price) * float64(quantity)
}

// CalculateSubtotal sums the line subtotals of the cart.
func CalculateSubtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// CalculateDeliveryFee returns 0 at or above the free delivery
// threshold and the standard fee otherwise.
func CalculateDeliveryFee(subtotal float64) float64 {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// CalculateTotal is subtotal plus delivery fee.
func CalculateTotal(subtotal, deliveryFee float64) float64 {
	return subtotal + deliveryFee
}

// IsMinimumOrderMet reports whether the subtotal reaches the checkout
// floor.
func IsMinimumOrderMet(subtotal float64) bool {
	return subtotal >= MinimumOrderAmount
}

// CalculateFreeDeliveryRemaining is how much more the customer must add
// to reach free delivery, never negative.
func CalculateFreeDeliveryRemaining(subtotal float64) float64 {
	return math.Max(0, FreeDeliveryThreshold-subtotal)
}

// CalculateFreeDeliveryProgress maps the subtotal onto a 0..100 progress
// percentage toward free delivery.
func CalculateFreeDeliveryProgress(subtotal float64) float64 {
	progress := subtotal / FreeDeliveryThreshold * 100
	return math.Min(100, math.Max(0, progress))
}

// IsFreeDeliveryEligible reports whether delivery is free at this
// subtotal.
func IsFreeDeliveryEligible(subtotal float64) bool {
	return subtotal >= FreeDeliveryThreshold
}

// NewCartItem builds a cart line from a menu item.
func NewCartItem(item models.MenuItem, quantity int) models.CartItem {
	return models.CartItem{
		ID:       item.ID,
		MenuItem: item,
		Quantity: quantity,
		Subtotal: CalculateItemSubtotal(item, quantity),
	}
}

// WithQuantity returns the cart line with the quantity changed and the
// subtotal recomputed.
func WithQuantity(item models.CartItem, quantity int) models.CartItem {
	item.Quantity = quantity
	item.Subtotal = CalculateItemSubtotal(item.MenuItem, quantity)
	return item
}
