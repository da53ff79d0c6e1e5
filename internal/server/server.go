package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront/internal/handler"
	storemw "storefront/internal/middleware"
	"storefront/internal/service"
)

type Server struct {
	echo            *echo.Echo
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	contactHandler  *handler.ContactHandler
	checkoutHandler *handler.CheckoutHandler
	adminKey        string
}

func NewServer(
	productService service.ProductService,
	orderService service.OrderService,
	contactService service.ContactService,
	checkoutService service.CheckoutService,
	adminKey string,
	publishableKey string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		productHandler:  handler.NewProductHandler(productService),
		orderHandler:    handler.NewOrderHandler(orderService),
		contactHandler:  handler.NewContactHandler(contactService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, publishableKey),
		adminKey:        adminKey,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	adminAuth := storemw.AdminAuth(s.adminKey)

	// -------- public storefront --------
	api.GET("/products", s.productHandler.List)
	api.GET("/products/:id", s.productHandler.Get)
	api.POST("/orders", s.orderHandler.Create)
	api.POST("/submissions", s.contactHandler.Create)
	api.POST("/checkout", s.checkoutHandler.Checkout)
	api.GET("/stripe/publishable-key", s.checkoutHandler.PublishableKey)

	// -------- admin panel --------
	api.POST("/products", s.productHandler.Create, adminAuth)
	api.PATCH("/products/:id", s.productHandler.Update, adminAuth)
	api.DELETE("/products/:id", s.productHandler.Delete, adminAuth)
	api.GET("/orders", s.orderHandler.List, adminAuth)
	api.GET("/orders/:id", s.orderHandler.Get, adminAuth)
	api.PATCH("/orders/:id", s.orderHandler.UpdateStatus, adminAuth)
	api.GET("/submissions", s.contactHandler.List, adminAuth)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
