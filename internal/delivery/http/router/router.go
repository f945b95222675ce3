// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mahsoulna/internal/delivery/http/middleware"
	"mahsoulna/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The route
// paths mirror what the mobile client already calls.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/api/register", r.userHandler.Register)
	e.POST("/api/login", r.userHandler.Login)
	e.GET("/api/categories", r.catalogHandler.Categories)
	e.GET("/api/products/:categoryId", r.catalogHandler.ProductsByCategory)
	e.GET("/api/randomItems", r.catalogHandler.RandomItems)
	e.GET("/api/recentlyAddedItems", r.catalogHandler.RecentlyAddedItems)
	e.GET("/api/search", r.catalogHandler.Search)
	e.GET("/api/avatars", r.userHandler.ListAvatars)

	// Routes that require authentication
	authGroup := e.Group("", r.authMiddleware.Authenticate)
	{
		authGroup.POST("/api/placeOrder", r.checkoutHandler.PlaceOrder)

		authGroup.GET("/api/user/:userId", r.userHandler.GetProfile)
		authGroup.PUT("/api/user/avatar/:userId", r.userHandler.UpdateAvatar)
		authGroup.PUT("/api/changePassword", r.userHandler.ChangePassword)
		authGroup.POST("/disableAccount", r.userHandler.DisableAccount)

		authGroup.GET("/api/user/orders/:userId", r.orderHandler.ListOrders)
		authGroup.GET("/api/order/items/:orderId", r.orderHandler.GetOrderLines)
		authGroup.GET("/api/order/receipt/:orderId/qr", r.orderHandler.ReceiptQR)

		authGroup.POST("/api/wishlist/addRemove", r.wishlistHandler.Toggle)
		authGroup.GET("/api/wishlist/:userId", r.wishlistHandler.ListItemIDs)
		authGroup.GET("/api/productWishList", r.wishlistHandler.ListProducts)
	}
}
