// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"groove/internal/delivery/http/middleware"
	"groove/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	UserHandler            *handler.UserHandler
	LabelHandler           *handler.LabelHandler
	ArtistHandler          *handler.ArtistHandler
	PersonHandler          *handler.PersonHandler
	BandMemberHandler      *handler.BandMemberHandler
	RecordHandler          *handler.RecordHandler
	GenreHandler           *handler.GenreHandler
	RecordGenreHandler     *handler.RecordGenreHandler
	AlbumHandler           *handler.AlbumHandler
	ShoppingSessionHandler *handler.ShoppingSessionHandler
	CartItemHandler        *handler.CartItemHandler
	UserPaymentHandler     *handler.UserPaymentHandler
	OrderDetailHandler     *handler.OrderDetailHandler
	OrderItemHandler       *handler.OrderItemHandler
	UserAddressHandler     *handler.UserAddressHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// crudRoutes is the common five-endpoint shape of every collection.
type crudRoutes interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Auth routes are the only unauthenticated part of the API.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Everything else requires a valid access token; per-entity
	// permissions are enforced in the usecases.
	collections := map[string]crudRoutes{
		"/users":            r.params.UserHandler,
		"/labels":           r.params.LabelHandler,
		"/artists":          r.params.ArtistHandler,
		"/persons":          r.params.PersonHandler,
		"/bandMembers":      r.params.BandMemberHandler,
		"/records":          r.params.RecordHandler,
		"/genres":           r.params.GenreHandler,
		"/recordGenres":     r.params.RecordGenreHandler,
		"/albums":           r.params.AlbumHandler,
		"/shoppingSessions": r.params.ShoppingSessionHandler,
		"/cartItems":        r.params.CartItemHandler,
		"/userPayments":     r.params.UserPaymentHandler,
		"/orderDetails":     r.params.OrderDetailHandler,
		"/orderItems":       r.params.OrderItemHandler,
		"/userAddresses":    r.params.UserAddressHandler,
	}
	for prefix, h := range collections {
		g := v1.Group(prefix)
		g.Use(r.params.AuthMiddleware.Authenticate)
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}
