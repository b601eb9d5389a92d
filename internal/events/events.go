// Package events carries dashboard change notifications over NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

const DefaultSubject = "dashboard.changes"

// Config configures the NATS connection. An empty URL disables events.
type Config struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

func (c *Config) subject() string {
	if c.Subject == "" {
		return DefaultSubject
	}
	return c.Subject
}

// Connect dials NATS. It returns a nil connection when c.URL is empty.
func Connect(c *Config) (*nats.Conn, error) {
	if c == nil || c.URL == "" {
		return nil, nil
	}
	nc, err := nats.Connect(c.URL,
		nats.Name("dashboard-manager"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("can't connect to nats at %s: %w", c.URL, err)
	}
	return nc, nil
}

type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher returns a publisher. A nil connection yields a publisher
// that drops every event.
func NewPublisher(nc *nats.Conn, c *Config) *Publisher {
	return &Publisher{nc: nc, subject: c.subject()}
}

func (p *Publisher) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	if p.nc == nil {
		return nil
	}
	if ev.At == 0 {
		ev.At = time.Now().Unix()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("can't encode change event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("can't publish change event: %w", err)
	}
	return nil
}

// Subscriber drops cached dashboard payloads whenever a change event arrives.
type Subscriber struct {
	nc      *nats.Conn
	subject string
	cache   dependency.Cache
	sub     *nats.Subscription
}

func NewSubscriber(nc *nats.Conn, c *Config, cache dependency.Cache) *Subscriber {
	return &Subscriber{nc: nc, subject: c.subject(), cache: cache}
}

// Start subscribes to the change subject. It is a no-op without a connection
// or without a cache to invalidate.
func (s *Subscriber) Start(ctx context.Context) error {
	if s.nc == nil || s.cache == nil {
		return nil
	}
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		s.handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("can't subscribe to %s: %w", s.subject, err)
	}
	s.sub = sub
	slog.Default().InfoContext(ctx, "subscribed to change events",
		slog.String("subject", s.subject),
	)
	return nil
}

func (s *Subscriber) Stop() {
	if s.sub == nil {
		return
	}
	if err := s.sub.Unsubscribe(); err != nil {
		slog.Default().Error("can't unsubscribe from change events",
			slog.String("err", err.Error()),
		)
	}
	s.sub = nil
}

func (s *Subscriber) handle(ctx context.Context, msg *nats.Msg) {
	var ev entity.ChangeEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		slog.Default().ErrorContext(ctx, "can't decode change event",
			slog.String("err", err.Error()),
		)
		return
	}
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't invalidate dashboard cache",
			slog.String("kind", ev.Kind),
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().DebugContext(ctx, "dashboard cache invalidated by change event",
		slog.String("kind", ev.Kind),
		slog.String("entity_id", ev.EntityId),
	)
}
