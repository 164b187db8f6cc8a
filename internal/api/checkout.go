package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cape/internal/delivery"
	"cape/internal/models"
	"cape/internal/notify"
	"cape/internal/orders"
	"cape/internal/session"
)

type checkoutRequest struct {
	CustomerInfo models.CustomerInfo `json:"customer_info"`
	SlotID       string              `json:"slot_id"`
}

// Checkout handlers

// GetCheckout returns the checkout view: the cart snapshot and the
// bookable delivery windows. An empty cart cannot be checked out and is
// sent back to the cart page.
func (s *Server) GetCheckout(c *gin.Context) {
	cs := s.sessionCart(c)
	if cs.ItemCount() == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	now := s.now()
	payload := cartPayload(cs)
	payload["slots"] = delivery.GenerateDeliveryTimeSlots(now)
	c.JSON(http.StatusOK, payload)
}

// ValidateCheckout runs the customer form checks without submitting, so
// the form can surface field errors before the order goes out.
func (s *Server) ValidateCheckout(c *gin.Context) {
	var info models.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := delivery.ValidateCustomerInfo(info)
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(fields) == 0,
		"fields": fields,
	})
}

func (s *Server) SubmitCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := delivery.ValidateCustomerInfo(req.CustomerInfo); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Проверьте правильность заполнения формы",
			"fields": fields,
		})
		return
	}

	now := s.now()
	slot, ok := delivery.FindSlotByID(req.SlotID, now)
	if !ok || !delivery.IsTimeSlotAvailable(slot, now) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Выбранное время доставки недоступно"})
		return
	}

	cs := s.sessionCart(c)
	items := cs.Items()
	totals := cs.Totals()
	if !delivery.IsMinimumOrderMet(totals.Subtotal) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Минимальная сумма заказа %s", delivery.FormatPrice(delivery.MinimumOrderAmount)),
		})
		return
	}

	details := models.OrderDetails{
		Items:        items,
		Subtotal:     totals.Subtotal,
		DeliveryFee:  totals.DeliveryFee,
		Total:        totals.Total,
		DeliveryTime: &slot,
		CustomerInfo: req.CustomerInfo,
	}

	orderID, err := s.orders.Submit(c.Request.Context(), details)
	if err != nil {
		s.failSubmission(c, err)
		return
	}

	s.recordOrder(orderID, details, slot)
	cs.Reset()

	s.metrics.OrdersSubmitted.Inc()
	s.monitor.IncrementMetric("orders_submitted")
	s.hub.Push(session.FromContext(c), notify.Notification{
		Type:        notify.TypeSuccess,
		Title:       "Заказ оформлен",
		Description: fmt.Sprintf("Номер заказа: %s", orderID),
	})

	c.JSON(http.StatusCreated, gin.H{
		"order_id": orderID,
		"status":   models.OrderStatusPending,
	})
}

// failSubmission translates a submission error into an HTTP response.
func (s *Server) failSubmission(c *gin.Context, err error) {
	status := http.StatusBadGateway
	code := "UNKNOWN"
	var details map[string]interface{}

	if se := orders.AsSubmissionError(err); se != nil {
		code = se.Code
		details = se.Details
		switch {
		case orders.IsValidationCode(se.Code):
			status = http.StatusBadRequest
		case se.Code == orders.CodeTimeout:
			status = http.StatusGatewayTimeout
		}
	}

	s.metrics.OrdersFailed.WithLabelValues(code).Inc()
	s.monitor.IncrementMetric("orders_failed")

	body := gin.H{"error": orders.ErrorMessage(err), "code": code}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// recordOrder persists the accepted submission so the confirmation page
// can replay it. Failures are logged; the order already went through.
func (s *Server) recordOrder(orderID string, details models.OrderDetails, slot models.DeliveryTimeSlot) {
	itemsJSON, err := json.Marshal(details.Items)
	if err != nil {
		log.Printf("api: failed to encode order items: %v", err)
	}

	record := models.OrderRecord{
		OrderID:      orderID,
		Status:       models.OrderStatusPending,
		CustomerName: details.CustomerInfo.Name,
		Phone:        details.CustomerInfo.Phone,
		Address:      details.CustomerInfo.Address,
		DeliveryDate: slot.Date,
		TimeRange:    slot.TimeRange,
		Subtotal:     details.Subtotal,
		DeliveryFee:  details.DeliveryFee,
		Total:        details.Total,
		ItemsJSON:    string(itemsJSON),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("api: failed to store order %s: %v", orderID, err)
	}
}

// GetOrderConfirmation returns the stored confirmation payload. Unknown
// order ids are sent back to the landing page.
func (s *Server) GetOrderConfirmation(c *gin.Context) {
	orderID := c.Param("id")

	var record models.OrderRecord
	if s.db.Where("order_id = ?", orderID).First(&record).RecordNotFound() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var items []models.CartItem
	if record.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(record.ItemsJSON), &items); err != nil {
			log.Printf("api: failed to decode items of order %s: %v", orderID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":      record.OrderID,
		"status":       record.Status,
		"customerName": record.CustomerName,
		"phone":        record.Phone,
		"address":      record.Address,
		"deliveryDate": record.DeliveryDate,
		"timeRange":    record.TimeRange,
		"items":        items,
		"totals": gin.H{
			"subtotal":    record.Subtotal,
			"deliveryFee": record.DeliveryFee,
			"total":       record.Total,
			"formatted": gin.H{
				"subtotal":    delivery.FormatPrice(record.Subtotal),
				"deliveryFee": delivery.FormatPrice(record.DeliveryFee),
				"total":       delivery.FormatPrice(record.Total),
			},
		},
	})
}
