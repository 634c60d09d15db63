package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/models"
	"foodhub-be/internal/mykafka"
	"foodhub-be/internal/remote"
)

// DeliveryFee is the flat per-order charge, regardless of which
// restaurants contributed items.
const DeliveryFee = 2.99

const defaultEstimatedDelivery = "25-35 min"

// DeliveryStep mock-advances an order's status after a fixed wait.
type DeliveryStep struct {
	Status models.OrderStatus
	After  time.Duration
}

// DefaultDeliverySchedule drives the confirmed -> preparing -> on_way
// -> delivered progression; nothing external ever moves an order.
func DefaultDeliverySchedule() []DeliveryStep {
	return []DeliveryStep{
		{Status: models.StatusPreparing, After: 1 * time.Minute},
		{Status: models.StatusOnWay, After: 10 * time.Minute},
		{Status: models.StatusDelivered, After: 15 * time.Minute},
	}
}

type OrderHandler struct {
	DB        *gorm.DB
	Catalog   *catalog.Catalog
	Producer  *mykafka.Producer
	JWTSecret []byte
	Log       *zap.Logger
	// Backend is the simulated order submission; it always succeeds
	// after its fixed delay.
	Backend remote.Operation
	// Schedule, when set, mock-advances new orders in the background.
	Schedule []DeliveryStep
}

type checkoutRequest struct {
	Address             string `json:"address"`
	Phone               string `json:"phone"`
	PaymentMethod       string `json:"payment_method"`
	CardNumber          string `json:"card_number"`
	ExpiryDate          string `json:"expiry_date"`
	CVV                 string `json:"cvv"`
	SpecialInstructions string `json:"special_instructions"`
}

func (r *checkoutRequest) validate() error {
	if r.Address == "" {
		return errors.New("delivery address is required")
	}
	if r.Phone == "" {
		return errors.New("phone number is required")
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = "card"
	}
	if r.PaymentMethod == "card" {
		if r.CardNumber == "" || r.ExpiryDate == "" || r.CVV == "" {
			return errors.New("card details are required")
		}
	}
	return nil
}

// Checkout snapshots the cart into an order at subtotal plus the flat
// delivery fee, then clears the cart. A single irreversible action:
// once the simulated submission returns there is no partial-failure
// path.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Simulated payment/submission round trip.
	if err := h.Backend.Do(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "order submission failed")
	}

	var (
		order      models.Order
		orderItems []models.OrderItem
	)
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if len(items) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "no items in cart")
		}

		var subtotal float64
		for _, it := range items {
			subtotal += it.Price * float64(it.Quantity)
		}

		// The order references the restaurant of the first line. A cart
		// may still mix restaurants under the one flat fee; see the
		// multi-restaurant note in DESIGN.md.
		estimated := defaultEstimatedDelivery
		var restaurantImage string
		if r := h.Catalog.RestaurantByID(items[0].RestaurantID); r != nil {
			estimated = r.DeliveryTime
			restaurantImage = r.Image
		}

		order = models.Order{
			Reference:         uuid.NewString(),
			UserID:            userID,
			RestaurantID:      items[0].RestaurantID,
			RestaurantName:    items[0].RestaurantName,
			RestaurantImage:   restaurantImage,
			Subtotal:          subtotal,
			DeliveryFee:       DeliveryFee,
			Total:             subtotal + DeliveryFee,
			Status:            models.StatusConfirmed,
			DeliveryAddress:   req.Address,
			EstimatedDelivery: estimated,
			CreatedAt:         time.Now().Unix(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		orderItems = make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			oi := models.OrderItem{
				OrderID:  order.ID,
				UserID:   userID,
				Name:     it.Name,
				Price:    it.Price,
				Quantity: it.Quantity,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			orderItems = append(orderItems, oi)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return nil
	})
	if txErr != nil {
		var he *echo.HTTPError
		if errors.As(txErr, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusInternalServerError, txErr.Error())
	}

	Publish(c, h.Producer, "order_events", order.Reference, map[string]any{
		"type":      "order_created",
		"userID":    userID,
		"orderID":   order.ID,
		"reference": order.Reference,
		"total":     order.Total,
	})

	if len(h.Schedule) > 0 {
		h.advanceStatus(order.ID, h.Schedule)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"order": order,
		"items": orderItems,
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var orders []models.Order
	if err := h.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	type orderWithItems struct {
		models.Order
		Items []models.OrderItem `json:"items"`
	}
	out := make([]orderWithItems, 0, len(orders))
	for _, o := range orders {
		var items []models.OrderItem
		if err := h.DB.Where("order_id = ?", o.ID).Find(&items).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		out = append(out, orderWithItems{Order: o, Items: items})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := CurrentUserID(c, h.JWTSecret)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var items []models.OrderItem
	if err := h.DB.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order, "items": items})
}

func (h *OrderHandler) advanceStatus(orderID uint, steps []DeliveryStep) {
	log := h.Log
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		for _, step := range steps {
			time.Sleep(step.After)
			if err := h.DB.Model(&models.Order{}).
				Where("id = ?", orderID).
				Update("status", step.Status).Error; err != nil {
				log.Error("order status update failed",
					zap.Uint("orderID", orderID), zap.Error(err))
				return
			}
			log.Info("order status advanced",
				zap.Uint("orderID", orderID), zap.String("status", string(step.Status)))
		}
	}()
}
