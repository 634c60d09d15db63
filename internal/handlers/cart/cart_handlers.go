package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/handlers"
	"foodhub-be/internal/models"
	"foodhub-be/internal/mykafka"
)

type CartHandler struct {
	DB        *gorm.DB
	Catalog   *catalog.Catalog
	Producer  *mykafka.Producer
	JWTSecret []byte
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := handlers.CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}
	return h.respondCart(c, userID)
}

// AddToCart merges the quantity into an existing line for the same menu
// item, or inserts a new line snapshotting the item and its restaurant.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := handlers.CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req struct {
		MenuItemID string `json:"menu_item_id"`
		Quantity   uint   `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	restaurant, menuItem := h.Catalog.MenuItemByID(req.MenuItemID)
	if menuItem == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
	}

	var item models.CartItem
	tx := h.DB.Where("user_id = ? AND menu_item_id = ?", userID, req.MenuItemID).First(&item)
	switch {
	case tx.Error == nil:
		item.Quantity += req.Quantity
		if err := h.DB.Save(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	case errors.Is(tx.Error, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:         userID,
			MenuItemID:     menuItem.ID,
			Name:           menuItem.Name,
			Price:          menuItem.Price,
			Image:          menuItem.Image,
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
			Quantity:       req.Quantity,
		}
		if err := h.DB.Create(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, tx.Error.Error())
	}

	h.publish(c, userID, map[string]any{
		"type":       "cart_item_added",
		"userID":     userID,
		"menuItemID": item.MenuItemID,
		"quantity":   item.Quantity,
	})
	return c.JSON(http.StatusOK, item)
}

// UpdateQuantity adds delta to a line's quantity, clamped at zero.
// Zero removes the line; an unknown line id is a no-op.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, err := handlers.CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var item models.CartItem
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return h.respondCart(c, userID)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	newQuantity := int(item.Quantity) + req.Delta
	if newQuantity < 0 {
		newQuantity = 0
	}

	if newQuantity == 0 {
		if err := h.DB.Delete(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		h.publish(c, userID, map[string]any{
			"type":   "cart_item_removed",
			"userID": userID,
			"id":     item.ID,
		})
		return h.respondCart(c, userID)
	}

	item.Quantity = uint(newQuantity)
	if err := h.DB.Save(&item).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.publish(c, userID, map[string]any{
		"type":        "cart_quantity_updated",
		"userID":      userID,
		"id":          item.ID,
		"newQuantity": item.Quantity,
	})
	return h.respondCart(c, userID)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := handlers.CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"id":     id,
	})
	return h.respondCart(c, userID)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := handlers.CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	if err := h.DB.Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, map[string]any{
		"type":   "cart_cleared",
		"userID": userID,
	})
	return h.respondCart(c, userID)
}

func (h *CartHandler) respondCart(c echo.Context, userID uint) error {
	var items []models.CartItem
	if err := h.DB.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	subtotal, count := Summarize(items)
	return c.JSON(http.StatusOK, echo.Map{
		"items":      items,
		"subtotal":   subtotal,
		"item_count": count,
	})
}
