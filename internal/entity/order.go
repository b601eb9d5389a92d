package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lower-case order lifecycle status stored on customer_order.
type OrderStatus string

func (os OrderStatus) String() string {
	return string(os)
}

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderOnTheWay  OrderStatus = "on_the_way"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OpenOrderStatuses are the statuses shown on the active orders feed.
var OpenOrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderOnTheWay,
}

// RevenueExcludedStatuses are left out of revenue, order count, the revenue
// series and leaderboards.
var RevenueExcludedStatuses = []OrderStatus{OrderCancelled}

const (
	PaymentCompleted = "completed"
	OrderTypeFood    = "FOOD_ORDER"
)

// StatusStrings converts statuses to plain strings for query parameters.
func StatusStrings(ss []OrderStatus) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}

// ActiveOrder is one row of the live open orders feed.
type ActiveOrder struct {
	Id             int             `db:"id"`
	OrderNumber    string          `db:"order_number"`
	Status         OrderStatus     `db:"status"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	CustomerName   string          `db:"customer_name"`
	RestaurantName string          `db:"restaurant_name"`
	DriverName     string          `db:"driver_name"`
	CreatedAt      time.Time       `db:"created_at"`
}

// Activity is a row of the admin activity log.
type Activity struct {
	Id          int       `db:"id"`
	Actor       string    `db:"actor"`
	Action      string    `db:"action"`
	EntityType  string    `db:"entity_type"`
	EntityId    string    `db:"entity_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Restaurant, Product, Driver, ShippingAgent, Customer, OrderInsert,
// OrderItemInsert and PaymentInsert describe rows written by the seeder.

type Restaurant struct {
	Id     int             `db:"id"`
	Name   string          `db:"name"`
	Logo   string          `db:"logo"`
	Rating decimal.Decimal `db:"rating"`
}

type Product struct {
	Id           int             `db:"id"`
	RestaurantId int             `db:"restaurant_id"`
	Name         string          `db:"name"`
	Image        string          `db:"image"`
	Price        decimal.Decimal `db:"price"`
}

type Driver struct {
	Id       int             `db:"id"`
	Name     string          `db:"name"`
	Phone    string          `db:"phone"`
	Rating   decimal.Decimal `db:"rating"`
	IsOnline bool            `db:"is_online"`
}

type ShippingAgent struct {
	Id     int             `db:"id"`
	Name   string          `db:"name"`
	Phone  string          `db:"phone"`
	Rating decimal.Decimal `db:"rating"`
}

type Customer struct {
	Id   int    `db:"id"`
	Name string `db:"name"`
}

type OrderInsert struct {
	OrderNumber     string
	UserId          int
	RestaurantId    int
	DriverId        *int
	ShippingAgentId *int
	Status          OrderStatus
	TotalPrice      decimal.Decimal
	CreatedAt       time.Time
	Items           []OrderItemInsert
	Payment         *PaymentInsert
}

type OrderItemInsert struct {
	ProductId int
	Quantity  int
	UnitPrice decimal.Decimal
}

type PaymentInsert struct {
	Method    string
	Amount    decimal.Decimal
	Status    string
	OrderType string
}
