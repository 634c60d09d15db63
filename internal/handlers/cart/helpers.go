package cart

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"foodhub-be/internal/handlers"
	"foodhub-be/internal/models"
)

// Summarize derives the cart totals. Always recomputed from the lines,
// never cached.
func Summarize(items []models.CartItem) (subtotal float64, count uint) {
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	return subtotal, count
}

func (h *CartHandler) publish(c echo.Context, userID uint, event map[string]any) {
	handlers.Publish(c, h.Producer, "cart_events", fmt.Sprint(userID), event)
}
