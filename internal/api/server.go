// Package api is the HTTP surface of the ordering service: menu and
// info pages, the per-session cart, delivery slots, checkout and the
// websocket notification stream.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"cape/internal/cart"
	"cape/internal/monitoring"
	"cape/internal/notify"
	"cape/internal/orders"
	"cape/internal/session"
)

// Server represents the main API handler for the restaurant
type Server struct {
	Router   *gin.Engine
	db       *gorm.DB
	carts    *cart.Manager
	orders   *orders.Service
	hub      *notify.Hub
	sessions *session.Manager
	monitor  *monitoring.Monitor
	metrics  *monitoring.Collectors

	// now is the server clock; tests pin it.
	now func() time.Time
}

// NewServer creates a new API server instance
func NewServer(db *gorm.DB, sessions *session.Manager, metrics *monitoring.Collectors) *Server {
	router := gin.Default()

	hub := notify.NewHub()
	s := &Server{
		Router:   router,
		db:       db,
		carts:    cart.NewManager(cart.NewGormStore(db), hub),
		orders:   orders.NewService(),
		hub:      hub,
		sessions: sessions,
		monitor:  monitoring.NewMonitor(),
		metrics:  metrics,
		now:      time.Now,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.Use(s.observeLatency())

	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Cape API is running"})
	})

	// The landing page is the about payload.
	s.Router.GET("/", s.GetAboutPage)

	s.Router.GET("/ws", s.sessions.Middleware(), s.ServeNotifications)

	v1 := s.Router.Group("/api/v1", s.sessions.Middleware())
	{
		// Menu
		v1.GET("/menu", s.GetMenu)
		v1.GET("/menu/:category", s.GetMenuCategory)

		// Info pages
		v1.GET("/pages/about", s.GetAboutPage)
		v1.GET("/pages/contacts", s.GetContactsPage)
		v1.GET("/pages/events", s.GetEventsPage)

		// Table bookings
		v1.POST("/bookings", s.CreateBooking)
		v1.GET("/bookings/:id", s.GetBooking)

		// Cart
		v1.GET("/cart", s.GetCart)
		v1.POST("/cart/items", s.AddCartItem)
		v1.PUT("/cart/items/:id", s.UpdateCartItem)
		v1.DELETE("/cart/items/:id", s.RemoveCartItem)
		v1.DELETE("/cart", s.ClearCart)

		// Delivery
		v1.GET("/delivery/slots", s.GetDeliverySlots)
		v1.GET("/delivery/quote", s.GetDeliveryQuote)

		// Checkout
		v1.GET("/checkout", s.GetCheckout)
		v1.POST("/checkout", s.SubmitCheckout)
		v1.POST("/checkout/validate", s.ValidateCheckout)
		v1.GET("/orders/:id", s.GetOrderConfirmation)

		// Service metrics snapshot
		v1.GET("/metrics", s.GetMetrics)
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Страница не найдена"})
	})
}

// observeLatency records per-route request durations.
func (s *Server) observeLatency() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.metrics.RequestDurations.
			WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// ServeNotifications attaches the request to the session's websocket
// notification stream.
func (s *Server) ServeNotifications(c *gin.Context) {
	s.hub.Serve(c.Writer, c.Request, session.FromContext(c))
}

// GetMetrics reports the in-process metric snapshot.
func (s *Server) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}

// sessionCart resolves the visitor's cart from the request session.
func (s *Server) sessionCart(c *gin.Context) *cart.Session {
	return s.carts.Get(session.FromContext(c))
}
