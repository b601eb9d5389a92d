package store

import (
	"context"
	"fmt"

	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

type seedStore struct {
	*MYSQLStore
}

// Seed returns an object implementing dependency.Seed interface
func (ms *MYSQLStore) Seed() dependency.Seed {
	return &seedStore{
		MYSQLStore: ms,
	}
}

func (ss *seedStore) AddRestaurant(ctx context.Context, r *entity.Restaurant) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO restaurant (name, logo, rating)
		VALUES (:name, :logo, :rating)
	`, map[string]any{
		"name":   r.Name,
		"logo":   r.Logo,
		"rating": r.Rating,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add restaurant: %w", err)
	}
	return id, nil
}

func (ss *seedStore) AddProduct(ctx context.Context, p *entity.Product) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO product (restaurant_id, name, image, price)
		VALUES (:restaurantId, :name, :image, :price)
	`, map[string]any{
		"restaurantId": p.RestaurantId,
		"name":         p.Name,
		"image":        p.Image,
		"price":        p.Price,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add product: %w", err)
	}
	return id, nil
}

func (ss *seedStore) AddDriver(ctx context.Context, d *entity.Driver) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO delivery_driver (name, phone, rating, is_online)
		VALUES (:name, :phone, :rating, :isOnline)
	`, map[string]any{
		"name":     d.Name,
		"phone":    d.Phone,
		"rating":   d.Rating,
		"isOnline": d.IsOnline,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add driver: %w", err)
	}
	return id, nil
}

func (ss *seedStore) AddShippingAgent(ctx context.Context, a *entity.ShippingAgent) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO shipping_agent (name, phone, rating)
		VALUES (:name, :phone, :rating)
	`, map[string]any{
		"name":   a.Name,
		"phone":  a.Phone,
		"rating": a.Rating,
	})
	if err != nil {
		return 0, fmt.Errorf("can't add shipping agent: %w", err)
	}
	return id, nil
}

func (ss *seedStore) AddCustomer(ctx context.Context, c *entity.Customer) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.DB(), `
		INSERT INTO app_user (name) VALUES (:name)
	`, map[string]any{"name": c.Name})
	if err != nil {
		return 0, fmt.Errorf("can't add customer: %w", err)
	}
	return id, nil
}

// AddOrder inserts the order with its items and optional payment in one transaction.
func (ss *seedStore) AddOrder(ctx context.Context, o *entity.OrderInsert) (int, error) {
	var orderId int
	err := ss.tx(ctx, func(ctx context.Context, st *MYSQLStore) error {
		var err error
		orderId, err = ExecNamedLastId(ctx, st.DB(), `
			INSERT INTO customer_order
			(order_number, user_id, restaurant_id, driver_id, shipping_agent_id, status, total_price, created_at)
			VALUES
			(:orderNumber, :userId, :restaurantId, :driverId, :shippingAgentId, :status, :totalPrice, :createdAt)
		`, map[string]any{
			"orderNumber":     o.OrderNumber,
			"userId":          o.UserId,
			"restaurantId":    o.RestaurantId,
			"driverId":        o.DriverId,
			"shippingAgentId": o.ShippingAgentId,
			"status":          o.Status.String(),
			"totalPrice":      o.TotalPrice,
			"createdAt":       o.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}

		items := make([]map[string]any, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, map[string]any{
				"order_id":   orderId,
				"product_id": it.ProductId,
				"quantity":   it.Quantity,
				"unit_price": it.UnitPrice,
			})
		}
		if err := BulkInsert(ctx, st.DB(), "order_item", []string{"order_id", "product_id", "quantity", "unit_price"}, items); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}

		if o.Payment == nil {
			return nil
		}
		err = ExecNamed(ctx, st.DB(), `
			INSERT INTO payment (order_id, method, amount, status, order_type, created_at)
			VALUES (:orderId, :method, :amount, :status, :orderType, :createdAt)
		`, map[string]any{
			"orderId":   orderId,
			"method":    o.Payment.Method,
			"amount":    o.Payment.Amount,
			"status":    o.Payment.Status,
			"orderType": o.Payment.OrderType,
			"createdAt": o.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderId, nil
}
