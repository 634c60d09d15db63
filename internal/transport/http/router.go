package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodhub-be/internal/handlers"
	"foodhub-be/internal/handlers/cart"
	"foodhub-be/internal/middleware/auth"
	"foodhub-be/internal/models"
)

type Deps struct {
	AuthHandler      *handlers.AuthHandler
	ProfileHandler   *handlers.ProfileHandler
	CatalogHandler   *handlers.CatalogHandler
	CartHandler      *cart.CartHandler
	OrderHandler     *handlers.OrderHandler
	DashboardHandler *handlers.DashboardHandler
	Guard            *auth.Guard
}

// Register wires the navigation surface. Cart, checkout, profile and
// order history need a signed-in user; the dashboards are role-gated.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	// Home is the browse screen.
	e.GET("/", d.CatalogHandler.ListRestaurants)

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)

	v1.GET("/restaurants", d.CatalogHandler.ListRestaurants)
	v1.GET("/restaurants/:id", d.CatalogHandler.GetRestaurant)
	v1.GET("/cuisines", d.CatalogHandler.ListCuisines)
	v1.GET("/search", d.CatalogHandler.Search)

	signedIn := v1.Group("", d.Guard.RequireLogin)

	signedIn.GET("/cart", d.CartHandler.GetCart)
	signedIn.POST("/cart", d.CartHandler.AddToCart)
	signedIn.PATCH("/cart/:id", d.CartHandler.UpdateQuantity)
	signedIn.DELETE("/cart/:id", d.CartHandler.RemoveItem)
	signedIn.DELETE("/cart", d.CartHandler.ClearCart)

	signedIn.POST("/checkout", d.OrderHandler.Checkout)
	signedIn.GET("/orders", d.OrderHandler.ListOrders)
	signedIn.GET("/orders/:id", d.OrderHandler.GetOrder)

	signedIn.GET("/profile", d.ProfileHandler.GetProfile)
	signedIn.PATCH("/profile", d.ProfileHandler.UpdateProfile)

	admin := v1.Group("/admin", d.Guard.RequireRole(models.RoleAdmin))
	admin.GET("/dashboard", d.DashboardHandler.AdminDashboard)

	operator := v1.Group("/restaurant-dashboard", d.Guard.RequireRole(models.RoleRestaurant))
	operator.GET("", d.DashboardHandler.RestaurantDashboard)
}
