package models

// DeliveryTimeSlot is a fixed 2-hour delivery window on a given date.
// Slots are regenerated from the wall clock on every request and never
// persisted.
type DeliveryTimeSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`      // YYYY-MM-DD, local
	TimeRange string `json:"timeRange"` // HH:MM-HH:MM
	Available bool   `json:"available"`
}

// CustomerInfo holds the free-text contact fields collected at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderDetails is the ephemeral checkout payload: a snapshot of the cart
// plus the computed totals and the chosen delivery window.
type OrderDetails struct {
	Items        []CartItem        `json:"items"`
	Subtotal     float64           `json:"subtotal"`
	DeliveryFee  float64           `json:"deliveryFee"`
	Total        float64           `json:"total"`
	DeliveryTime *DeliveryTimeSlot `json:"deliveryTime"`
	CustomerInfo CustomerInfo      `json:"customerInfo"`
}

// OrderTotals groups the money fields of a submitted order.
type OrderTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Order status lifecycle.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
)

// OrderSubmission is the payload handed to the (simulated) order API.
type OrderSubmission struct {
	OrderID      string           `json:"orderId"`
	Items        []CartItem       `json:"items"`
	CustomerInfo CustomerInfo     `json:"customerInfo"`
	DeliveryTime DeliveryTimeSlot `json:"deliveryTime"`
	Totals       OrderTotals      `json:"totals"`
	Timestamp    string           `json:"timestamp"`
	Status       string           `json:"status"`
}
