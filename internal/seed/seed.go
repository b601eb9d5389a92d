// Package seed fills a repository with plausible demo data for the dashboard.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

// Config controls how many rows are generated.
type Config struct {
	Restaurants           int
	ProductsPerRestaurant int
	Drivers               int
	ShippingAgents        int
	Customers             int
	Orders                int
	// Days is how far back order timestamps are spread.
	Days int
}

// DefaultConfig returns a small data set that covers every dashboard widget.
func DefaultConfig() Config {
	return Config{
		Restaurants:           10,
		ProductsPerRestaurant: 5,
		Drivers:               8,
		ShippingAgents:        3,
		Customers:             40,
		Orders:                200,
		Days:                  400,
	}
}

// Result counts what a run inserted.
type Result struct {
	RunId          string
	Restaurants    int
	Products       int
	Drivers        int
	ShippingAgents int
	Customers      int
	Orders         int
}

var (
	paymentMethods = []string{"Card", "cash", "WALLET", "card"}
	dishes         = []string{"burger", "pizza", "ramen", "salad", "taco", "curry", "wrap", "noodles"}
	statusWeights  = []struct {
		status entity.OrderStatus
		weight int
	}{
		{entity.OrderDelivered, 60},
		{entity.OrderCancelled, 10},
		{entity.OrderPending, 6},
		{entity.OrderConfirmed, 6},
		{entity.OrderPreparing, 6},
		{entity.OrderReady, 6},
		{entity.OrderOnTheWay, 6},
	}
)

type Seeder struct {
	repo dependency.Repository
	pub  dependency.EventPublisher
	fake faker.Faker
	now  func() time.Time
}

// New creates a seeder. pub may be nil.
func New(repo dependency.Repository, pub dependency.EventPublisher) *Seeder {
	return &Seeder{
		repo: repo,
		pub:  pub,
		fake: faker.New(),
		now:  time.Now,
	}
}

func normalize(c Config) Config {
	dc := DefaultConfig()
	if c.Restaurants <= 0 {
		c.Restaurants = dc.Restaurants
	}
	if c.ProductsPerRestaurant <= 0 {
		c.ProductsPerRestaurant = dc.ProductsPerRestaurant
	}
	if c.Drivers <= 0 {
		c.Drivers = dc.Drivers
	}
	if c.ShippingAgents <= 0 {
		c.ShippingAgents = dc.ShippingAgents
	}
	if c.Customers <= 0 {
		c.Customers = dc.Customers
	}
	if c.Orders < 0 {
		c.Orders = 0
	}
	if c.Days <= 0 {
		c.Days = dc.Days
	}
	return c
}

// Run inserts the catalogue, then orders, then an activity row, and finally
// publishes a change event so running services drop their cache.
func (s *Seeder) Run(ctx context.Context, c Config) (*Result, error) {
	c = normalize(c)
	res := &Result{RunId: uuid.NewString()}
	sd := s.repo.Seed()

	restaurantIds := make([]int, 0, c.Restaurants)
	productsByRestaurant := map[int][]entity.Product{}
	for i := 0; i < c.Restaurants; i++ {
		r := &entity.Restaurant{
			Name:   s.fake.Company().Name(),
			Logo:   s.fake.Internet().URL(),
			Rating: decimal.NewFromFloat(s.fake.Float64(1, 1, 5)),
		}
		id, err := sd.AddRestaurant(ctx, r)
		if err != nil {
			return res, fmt.Errorf("can't add restaurant: %w", err)
		}
		restaurantIds = append(restaurantIds, id)
		res.Restaurants++

		for j := 0; j < c.ProductsPerRestaurant; j++ {
			p := entity.Product{
				RestaurantId: id,
				Name:         s.fake.Lorem().Word() + " " + dishes[s.fake.IntBetween(0, len(dishes)-1)],
				Image:        s.fake.Internet().URL(),
				Price:        decimal.NewFromFloat(s.fake.Float64(2, 5, 50)),
			}
			pid, err := sd.AddProduct(ctx, &p)
			if err != nil {
				return res, fmt.Errorf("can't add product: %w", err)
			}
			p.Id = pid
			productsByRestaurant[id] = append(productsByRestaurant[id], p)
			res.Products++
		}
	}

	driverIds := make([]int, 0, c.Drivers)
	for i := 0; i < c.Drivers; i++ {
		id, err := sd.AddDriver(ctx, &entity.Driver{
			Name:     s.fake.Person().Name(),
			Phone:    s.fake.Phone().Number(),
			Rating:   decimal.NewFromFloat(s.fake.Float64(1, 1, 5)),
			IsOnline: s.fake.Bool(),
		})
		if err != nil {
			return res, fmt.Errorf("can't add driver: %w", err)
		}
		driverIds = append(driverIds, id)
		res.Drivers++
	}

	agentIds := make([]int, 0, c.ShippingAgents)
	for i := 0; i < c.ShippingAgents; i++ {
		id, err := sd.AddShippingAgent(ctx, &entity.ShippingAgent{
			Name:   s.fake.Company().Name() + " Logistics",
			Phone:  s.fake.Phone().Number(),
			Rating: decimal.NewFromFloat(s.fake.Float64(1, 1, 5)),
		})
		if err != nil {
			return res, fmt.Errorf("can't add shipping agent: %w", err)
		}
		agentIds = append(agentIds, id)
		res.ShippingAgents++
	}

	customerIds := make([]int, 0, c.Customers)
	for i := 0; i < c.Customers; i++ {
		id, err := sd.AddCustomer(ctx, &entity.Customer{Name: s.fake.Person().Name()})
		if err != nil {
			return res, fmt.Errorf("can't add customer: %w", err)
		}
		customerIds = append(customerIds, id)
		res.Customers++
	}

	now := s.now()
	from := now.AddDate(0, 0, -c.Days)
	for i := 0; i < c.Orders; i++ {
		rid := restaurantIds[s.fake.IntBetween(0, len(restaurantIds)-1)]
		o := s.order(
			productsByRestaurant[rid],
			rid,
			customerIds[s.fake.IntBetween(0, len(customerIds)-1)],
			driverIds[s.fake.IntBetween(0, len(driverIds)-1)],
			agentIds[s.fake.IntBetween(0, len(agentIds)-1)],
			s.fake.Time().TimeBetween(from, now),
		)
		if _, err := sd.AddOrder(ctx, o); err != nil {
			return res, fmt.Errorf("can't add order %s: %w", o.OrderNumber, err)
		}
		res.Orders++
	}

	_, err := s.repo.Activity().AddActivity(ctx, &entity.Activity{
		Actor:      "system",
		Action:     "seed",
		EntityType: "seed_run",
		EntityId:   res.RunId,
		Description: fmt.Sprintf("seeded %d restaurants, %d products, %d drivers, %d shipping agents, %d customers and %d orders",
			res.Restaurants, res.Products, res.Drivers, res.ShippingAgents, res.Customers, res.Orders),
		CreatedAt: now,
	})
	if err != nil {
		return res, fmt.Errorf("can't add seed activity: %w", err)
	}

	if s.pub != nil {
		if err := s.pub.Publish(ctx, entity.ChangeEvent{Kind: "seed", EntityId: res.RunId}); err != nil {
			slog.Default().ErrorContext(ctx, "can't publish seed change event",
				slog.String("err", err.Error()),
			)
		}
	}

	return res, nil
}

func (s *Seeder) status() entity.OrderStatus {
	total := 0
	for _, sw := range statusWeights {
		total += sw.weight
	}
	n := s.fake.IntBetween(1, total)
	for _, sw := range statusWeights {
		n -= sw.weight
		if n <= 0 {
			return sw.status
		}
	}
	return entity.OrderDelivered
}

func (s *Seeder) order(menu []entity.Product, restaurantId, customerId, driverId, agentId int, createdAt time.Time) *entity.OrderInsert {
	o := &entity.OrderInsert{
		OrderNumber:  "ORD-" + strings.ToUpper(cuid.New()),
		UserId:       customerId,
		RestaurantId: restaurantId,
		Status:       s.status(),
		CreatedAt:    createdAt.Truncate(time.Millisecond),
		TotalPrice:   decimal.Zero,
	}

	n := s.fake.IntBetween(1, 3)
	for i := 0; i < n && len(menu) > 0; i++ {
		p := menu[s.fake.IntBetween(0, len(menu)-1)]
		q := s.fake.IntBetween(1, 4)
		o.Items = append(o.Items, entity.OrderItemInsert{ProductId: p.Id, Quantity: q, UnitPrice: p.Price})
		o.TotalPrice = o.TotalPrice.Add(p.Price.Mul(decimal.NewFromInt(int64(q))))
	}

	if o.Status != entity.OrderPending {
		o.DriverId = &driverId
	}
	if s.fake.IntBetween(1, 4) == 1 {
		o.ShippingAgentId = &agentId
	}

	if o.Status == entity.OrderCancelled {
		return o
	}
	p := &entity.PaymentInsert{
		Method:    paymentMethods[s.fake.IntBetween(0, len(paymentMethods)-1)],
		Amount:    o.TotalPrice,
		Status:    entity.PaymentCompleted,
		OrderType: entity.OrderTypeFood,
	}
	if o.Status == entity.OrderPending {
		p.Status = "pending"
	}
	if s.fake.IntBetween(1, 20) == 1 {
		p.OrderType = "SUBSCRIPTION"
	}
	o.Payment = p
	return o
}
