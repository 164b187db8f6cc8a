package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"cape/internal/delivery"
)

// Delivery handlers

func (s *Server) GetDeliverySlots(c *gin.Context) {
	now := s.now()
	slots := delivery.GenerateDeliveryTimeSlots(now)
	grouped := delivery.GroupTimeSlotsByDate(slots)

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]gin.H, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, gin.H{
			"date":  date,
			"label": delivery.DateDisplayLabel(date, now),
			"slots": grouped[date],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":  slots,
		"groups": groups,
	})
}

func (s *Server) GetDeliveryQuote(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(s.sessionCart(c)))
}
