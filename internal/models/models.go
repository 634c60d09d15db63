package models

import "fmt"

// Role is the closed set of account roles. Guards match on it
// exhaustively, so adding a role is a compile-visible change.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleRestaurant, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         Role   `gorm:"not null"                 json:"role"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}

// CartItem is one line of a user's cart. It snapshots the menu item and
// its restaurant at add time; at most one line exists per menu item.
type CartItem struct {
	ID             uint    `gorm:"primaryKey"                  json:"id"`
	UserID         uint    `gorm:"index;not null"              json:"user_id"`
	MenuItemID     string  `gorm:"not null"                    json:"menu_item_id"`
	Name           string  `gorm:"not null"                    json:"name"`
	Price          float64 `gorm:"not null"                    json:"price"`
	Image          string  `json:"image"`
	RestaurantID   string  `gorm:"not null"                    json:"restaurant_id"`
	RestaurantName string  `gorm:"not null"                    json:"restaurant_name"`
	Quantity       uint    `gorm:"default:1;check:quantity>0"  json:"quantity"`
}

type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusOnWay     OrderStatus = "on_way"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID                uint        `gorm:"primaryKey"     json:"id"`
	Reference         string      `gorm:"index"          json:"reference"`
	UserID            uint        `gorm:"index;not null" json:"user_id"`
	RestaurantID      string      `json:"restaurant_id"`
	RestaurantName    string      `json:"restaurant_name"`
	RestaurantImage   string      `json:"restaurant_image"`
	Subtotal          float64     `gorm:"not null"       json:"subtotal"`
	DeliveryFee       float64     `gorm:"not null"       json:"delivery_fee"`
	Total             float64     `gorm:"not null"       json:"total"`
	Status            OrderStatus `gorm:"not null"       json:"status"`
	DeliveryAddress   string      `gorm:"not null"       json:"delivery_address"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	CreatedAt         int64       `gorm:"not null"       json:"created_at"`
}

// OrderItem is an immutable snapshot of (name, quantity, unit price)
// taken from the cart at checkout time.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey"     json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"order_id"`
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Name     string  `gorm:"not null"       json:"name"`
	Price    float64 `gorm:"not null"       json:"price"`
	Quantity uint    `gorm:"default:1"      json:"quantity"`
}
