package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cape/internal/cart"
	"cape/internal/delivery"
	"cape/internal/menu"
)

// cartPayload renders the visitor's cart with its derived money values.
func cartPayload(cs *cart.Session) gin.H {
	totals := cs.Totals()
	return gin.H{
		"items":     cs.Items(),
		"itemCount": cs.ItemCount(),
		"totals": gin.H{
			"subtotal":    totals.Subtotal,
			"deliveryFee": totals.DeliveryFee,
			"total":       totals.Total,
			"formatted": gin.H{
				"subtotal":    delivery.FormatPrice(totals.Subtotal),
				"deliveryFee": delivery.FormatPrice(totals.DeliveryFee),
				"total":       delivery.FormatPrice(totals.Total),
			},
		},
		"minimumOrderMet": delivery.IsMinimumOrderMet(totals.Subtotal),
		"freeDelivery": gin.H{
			"eligible":  delivery.IsFreeDeliveryEligible(totals.Subtotal),
			"remaining": delivery.CalculateFreeDeliveryRemaining(totals.Subtotal),
			"progress":  delivery.CalculateFreeDeliveryProgress(totals.Subtotal),
		},
	}
}

// Cart handlers

func (s *Server) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(s.sessionCart(c)))
}

func (s *Server) AddCartItem(c *gin.Context) {
	var req struct {
		MenuItemID int `json:"menu_item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := menu.ByID(req.MenuItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Блюдо не найдено"})
		return
	}

	cs := s.sessionCart(c)
	cs.AddItem(item)
	s.metrics.CartOperations.WithLabelValues("add").Inc()

	c.JSON(http.StatusOK, cartPayload(cs))
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный номер позиции"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cs := s.sessionCart(c)
	if !cartContains(cs, id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Позиция не найдена в корзине"})
		return
	}
	cs.UpdateQuantity(id, req.Quantity)
	s.metrics.CartOperations.WithLabelValues("update").Inc()

	c.JSON(http.StatusOK, cartPayload(cs))
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный номер позиции"})
		return
	}

	cs := s.sessionCart(c)
	if !cartContains(cs, id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Позиция не найдена в корзине"})
		return
	}
	cs.RemoveItem(id)
	s.metrics.CartOperations.WithLabelValues("remove").Inc()

	c.JSON(http.StatusOK, cartPayload(cs))
}

func (s *Server) ClearCart(c *gin.Context) {
	cs := s.sessionCart(c)
	cs.Clear()
	s.metrics.CartOperations.WithLabelValues("clear").Inc()

	c.JSON(http.StatusOK, cartPayload(cs))
}

func cartContains(cs *cart.Session, id int) bool {
	for _, item := range cs.Items() {
		if item.ID == id {
			return true
		}
	}
	return false
}
