package server

import (
	"errors"
	"net/http"

	"plateforge/internal/handler"
	custommw "plateforge/internal/middleware"
	"plateforge/internal/repository"
	"plateforge/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	authHandler    *handler.AuthHandler
	authService    service.AuthService
}

func NewServer(
	catalogService service.CatalogService,
	orderService service.OrderService,
	authService service.AuthService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		catalogHandler: handler.NewCatalogHandler(catalogService),
		orderHandler:   handler.NewOrderHandler(orderService),
		authHandler:    handler.NewAuthHandler(authService),
		authService:    authService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- storefront --------
	s.catalogHandler.RegisterPublic(api)
	api.POST("/orders", s.orderHandler.CreateOrder)
	api.GET("/orders/:id", s.orderHandler.GetOrder)

	// -------- admin --------
	api.POST("/admin/login", s.authHandler.Login)

	admin := api.Group("/admin", custommw.AdminAuth(s.authService))
	admin.GET("/orders", s.orderHandler.ListOrders)
	admin.GET("/stats", s.orderHandler.GetStats)
	s.catalogHandler.RegisterAdmin(admin)
}

// errorHandler converts every error into the {success:false, message} envelope
// the clients expect. Domain sentinels map to 404/400/401; anything
// unrecognized stays a generic 500 and is logged, never leaked.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, service.ErrValidation):
		code = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		code = http.StatusUnauthorized
		msg = err.Error()
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]any{"success": false, "message": msg})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
