package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foodhub-be/internal/catalog"
)

// DashboardHandler serves the role-gated dashboard screens. The
// figures are static illustrative mock data, matching the rest of the
// compiled-in catalog.
type DashboardHandler struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

type statCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	stats := []statCard{
		{Title: "Total Revenue", Value: "$124,563", Change: "+12.5%"},
		{Title: "Total Orders", Value: "3,847", Change: "+8.2%"},
		{Title: "Active Restaurants", Value: "156", Change: "+3.1%"},
		{Title: "Total Users", Value: "12,459", Change: "+15.3%"},
	}

	type restaurantRow struct {
		Name    string  `json:"name"`
		Orders  int     `json:"orders"`
		Revenue string  `json:"revenue"`
		Rating  float64 `json:"rating"`
	}
	topRestaurants := []restaurantRow{
		{Name: "Pizza Palace", Orders: 245, Revenue: "$5,430", Rating: 4.8},
		{Name: "Burger House", Orders: 198, Revenue: "$4,250", Rating: 4.6},
		{Name: "Sushi Zen", Orders: 156, Revenue: "$6,890", Rating: 4.9},
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stats":           stats,
		"top_restaurants": topRestaurants,
	})
}

func (h *DashboardHandler) RestaurantDashboard(c echo.Context) error {
	stats := []statCard{
		{Title: "Today's Revenue", Value: "$1,245", Change: "+8.2%"},
		{Title: "Today's Orders", Value: "47", Change: "+12.5%"},
		{Title: "Average Order Value", Value: "$26.49", Change: "+5.1%"},
		{Title: "Average Prep Time", Value: "18 min", Change: "-2.3%"},
	}

	// The operator's own menu comes from the catalog; the mock data
	// associates every operator with the first restaurant.
	var menu []catalog.MenuItem
	if restaurants := h.Catalog.Restaurants(); len(restaurants) > 0 {
		menu = restaurants[0].Menu
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stats": stats,
		"menu":  menu,
	})
}
