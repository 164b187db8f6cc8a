// Package delivery holds the ordering business rules: price parsing and
// formatting, delivery fee and total calculation, and delivery time slot
// generation.
package delivery

// Delivery fee configuration, in rubles.
const (
	StandardDeliveryFee   = 300
	FreeDeliveryThreshold = 2000
	MinimumOrderAmount    = 500
)

// Time slot configuration.
const (
	AdvanceBookingHours = 2
	DeliveryStartHour   = 11
	DeliveryEndHour     = 21
	SlotDurationHours   = 2
	MaxDaysAhead        = 1
)

// MinLeadTimeMinutes is the minimum distance between "now" and a slot's
// start for the slot to be bookable. Exactly this many minutes is enough.
const MinLeadTimeMinutes = AdvanceBookingHours * 60

// Cart configuration.
const (
	MaxQuantityPerItem = 10
	MaxItemsInCart     = 50
	StorageKey         = "cape-delivery-cart"
	StorageVersion     = 1
)
