package models

import "github.com/jinzhu/gorm"

// Booking is a table reservation request made through the booking page.
type Booking struct {
	gorm.Model
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Guests int    `json:"guests"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Status string `json:"status"`
}

// Booking statuses.
const (
	BookingStatusRequested = "requested"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// OrderRecord is a submitted order as stored after a successful
// (simulated) submission, so the confirmation page can look it up.
type OrderRecord struct {
	gorm.Model
	OrderID      string  `json:"orderId" gorm:"unique_index"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	DeliveryDate string  `json:"deliveryDate"`
	TimeRange    string  `json:"timeRange"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Total        float64 `json:"total"`
	ItemsJSON    string  `json:"-" gorm:"type:text"`
}
