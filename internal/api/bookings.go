package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"cape/internal/models"
)

// Bookings above this size are handled by phone only.
const MaxBookingGuests = 12

type bookingRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Guests int    `json:"guests"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// validate returns per-field Russian error messages; empty means valid.
func (r bookingRequest) validate() map[string]string {
	errors := map[string]string{}

	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < 2 {
		errors["name"] = "Имя должно содержать минимум 2 символа"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errors["phone"] = "Введите корректный номер телефона"
	}
	if r.Guests < 1 || r.Guests > MaxBookingGuests {
		errors["guests"] = "Количество персон должно быть от 1 до 12"
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errors["date"] = "Укажите дату бронирования"
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		errors["time"] = "Укажите время бронирования"
	}

	return errors
}

// Booking handlers

func (s *Server) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Проверьте правильность заполнения формы",
			"fields": fields,
		})
		return
	}

	booking := models.Booking{
		Name:   strings.TrimSpace(req.Name),
		Phone:  strings.TrimSpace(req.Phone),
		Email:  strings.TrimSpace(req.Email),
		Guests: req.Guests,
		Date:   req.Date,
		Time:   req.Time,
		Status: models.BookingStatusRequested,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.metrics.BookingsCreated.Inc()
	s.monitor.IncrementMetric("bookings_created")

	c.JSON(http.StatusCreated, booking)
}

func (s *Server) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный номер бронирования"})
		return
	}

	var booking models.Booking
	if s.db.First(&booking, id).RecordNotFound() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
