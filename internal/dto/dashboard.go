package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

const dateLayout = "2006-01-02"

type MetricValue struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type DashboardKPIs struct {
	Revenue       MetricValue `json:"revenue"`
	Orders        MetricValue `json:"orders"`
	Customers     MetricValue `json:"customers"`
	ActiveDrivers MetricValue `json:"active_drivers"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type OrderAnalytics struct {
	PaymentMethods []NamedValue `json:"payment_methods"`
	OrderStatuses  []NamedValue `json:"order_statuses"`
}

type BestRestaurant struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Logo         string  `json:"logo"`
	Rating       float64 `json:"rating"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type BestProduct struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	RestaurantName string  `json:"restaurant_name"`
	TotalQuantity  int     `json:"total_quantity"`
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type DriverPerformance struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Rating       float64 `json:"rating"`
	IsOnline     bool    `json:"is_online"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ShippingAgentPerformance struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Rating       float64 `json:"rating"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ActiveOrder struct {
	Id             int       `json:"id"`
	OrderNumber    string    `json:"order_number"`
	Status         string    `json:"status"`
	TotalPrice     float64   `json:"total_price"`
	CustomerName   string    `json:"customer_name"`
	RestaurantName string    `json:"restaurant_name"`
	DriverName     string    `json:"driver_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type Activity struct {
	Id          int       `json:"id"`
	Actor       string    `json:"actor"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityId    string    `json:"entity_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func metricValue(m entity.MetricValue) MetricValue {
	return MetricValue{Value: toFloat(m.Value), Change: m.Change}
}

func ConvertEntityDashboardKPIs(k *entity.DashboardKPIs) *DashboardKPIs {
	if k == nil {
		return &DashboardKPIs{}
	}
	return &DashboardKPIs{
		Revenue:       metricValue(k.Revenue),
		Orders:        metricValue(k.Orders),
		Customers:     metricValue(k.Customers),
		ActiveDrivers: metricValue(k.ActiveDrivers),
	}
}

func ConvertEntityRevenueSeries(points []entity.RevenuePoint) []RevenuePoint {
	out := make([]RevenuePoint, 0, len(points))
	for _, p := range points {
		out = append(out, RevenuePoint{Date: p.Date.Format(dateLayout), Revenue: toFloat(p.Revenue)})
	}
	return out
}

func convertNamedValues(vs []entity.NamedValue) []NamedValue {
	out := make([]NamedValue, 0, len(vs))
	for _, v := range vs {
		out = append(out, NamedValue{Name: v.Name, Value: toFloat(v.Value)})
	}
	return out
}

func ConvertEntityOrderAnalytics(oa *entity.OrderAnalytics) *OrderAnalytics {
	if oa == nil {
		return &OrderAnalytics{PaymentMethods: []NamedValue{}, OrderStatuses: []NamedValue{}}
	}
	return &OrderAnalytics{
		PaymentMethods: convertNamedValues(oa.PaymentMethods),
		OrderStatuses:  convertNamedValues(oa.OrderStatuses),
	}
}

// ConvertEntityLeaderboard shapes entries into the list type of kind.
func ConvertEntityLeaderboard(kind entity.LeaderboardKind, es []entity.LeaderboardEntry) any {
	switch kind {
	case entity.LeaderboardProduct:
		out := make([]BestProduct, 0, len(es))
		for _, e := range es {
			out = append(out, BestProduct{
				Id:             e.Id,
				Name:           e.Name,
				Image:          e.Image,
				RestaurantName: e.RestaurantName,
				TotalQuantity:  e.TotalQuantity,
				TotalOrders:    e.TotalOrders,
				TotalRevenue:   toFloat(e.TotalRevenue),
			})
		}
		return out
	case entity.LeaderboardDriver:
		out := make([]DriverPerformance, 0, len(es))
		for _, e := range es {
			out = append(out, DriverPerformance{
				Id:           e.Id,
				Name:         e.Name,
				Phone:        e.Phone,
				Rating:       toFloat(e.Rating),
				IsOnline:     e.IsOnline,
				TotalOrders:  e.TotalOrders,
				TotalRevenue: toFloat(e.TotalRevenue),
			})
		}
		return out
	case entity.LeaderboardShippingAgent:
		out := make([]ShippingAgentPerformance, 0, len(es))
		for _, e := range es {
			out = append(out, ShippingAgentPerformance{
				Id:           e.Id,
				Name:         e.Name,
				Phone:        e.Phone,
				Rating:       toFloat(e.Rating),
				TotalOrders:  e.TotalOrders,
				TotalRevenue: toFloat(e.TotalRevenue),
			})
		}
		return out
	default:
		out := make([]BestRestaurant, 0, len(es))
		for _, e := range es {
			out = append(out, BestRestaurant{
				Id:           e.Id,
				Name:         e.Name,
				Logo:         e.Logo,
				Rating:       toFloat(e.Rating),
				TotalOrders:  e.TotalOrders,
				TotalRevenue: toFloat(e.TotalRevenue),
			})
		}
		return out
	}
}

func ConvertEntityActiveOrders(os []entity.ActiveOrder) []ActiveOrder {
	out := make([]ActiveOrder, 0, len(os))
	for _, o := range os {
		out = append(out, ActiveOrder{
			Id:             o.Id,
			OrderNumber:    o.OrderNumber,
			Status:         o.Status.String(),
			TotalPrice:     toFloat(o.TotalPrice),
			CustomerName:   o.CustomerName,
			RestaurantName: o.RestaurantName,
			DriverName:     o.DriverName,
			CreatedAt:      o.CreatedAt,
		})
	}
	return out
}

func ConvertEntityActivities(as []entity.Activity) []Activity {
	out := make([]Activity, 0, len(as))
	for _, a := range as {
		out = append(out, Activity(a))
	}
	return out
}
