package app

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/tastyhub/dashboard-manager/config"
	httpapi "github.com/tastyhub/dashboard-manager/internal/api/http"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	apidashboard "github.com/tastyhub/dashboard-manager/internal/apisrv/dashboard"
	"github.com/tastyhub/dashboard-manager/internal/cache"
	"github.com/tastyhub/dashboard-manager/internal/dashboard"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/events"
	"github.com/tastyhub/dashboard-manager/internal/seed"
	"github.com/tastyhub/dashboard-manager/internal/store"
	"github.com/tastyhub/dashboard-manager/internal/store/memory"
	"github.com/tastyhub/dashboard-manager/internal/warmup"
)

// DefaultPermissions mirrors the rows seeded by the role_permissions migration.
var DefaultPermissions = []entity.RolePermission{
	{Role: entity.RoleSuperAdmin, Subject: entity.Wildcard, Module: entity.Wildcard, Action: entity.Wildcard},
	{Role: entity.RoleAdmin, Subject: entity.SubjectAdmin, Module: entity.ModuleDashboard, Action: entity.ActionRead},
	{Role: entity.RoleAdmin, Subject: entity.SubjectAdmin, Module: "orders", Action: entity.Wildcard},
	{Role: entity.RoleRestaurantOps, Subject: entity.SubjectAdmin, Module: "orders", Action: entity.ActionRead},
}

// OpenRepository returns the repository selected by storage.type. A memory
// store gets the default permissions and, with storage.seed, demo data.
func OpenRepository(ctx context.Context, c *config.Config) (dependency.Repository, error) {
	switch c.Storage.Type {
	case config.StorageMemory:
		st := memory.New()
		for _, rp := range DefaultPermissions {
			if err := st.Permissions().AddRolePermission(ctx, rp); err != nil {
				return nil, fmt.Errorf("can't add default permission: %w", err)
			}
		}
		if c.Storage.Seed {
			res, err := seed.New(st, nil).Run(ctx, seed.DefaultConfig())
			if err != nil {
				return nil, fmt.Errorf("can't seed memory store: %w", err)
			}
			slog.Default().InfoContext(ctx, "memory store seeded",
				slog.String("run_id", res.RunId),
				slog.Int("orders", res.Orders),
			)
		}
		return st, nil
	default:
		st, err := store.New(ctx, c.DB)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
}

// App is the main application
type App struct {
	c *config.Config

	db    dependency.Repository
	cache dependency.Cache
	nc    *nats.Conn
	sub   *events.Subscriber
	wu    *warmup.Worker
	hs    *httpapi.Server

	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects every backend and starts the http server and background workers.
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting dashboard manager",
		slog.String("storage", a.c.Storage.Type),
	)

	a.db, err = OpenRepository(ctx, a.c)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't open repository",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.cache, err = cache.New(ctx, &a.c.Redis)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to redis",
			slog.String("err", err.Error()),
		)
		return err
	}

	a.nc, err = events.Connect(&a.c.NATS)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to nats",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.sub = events.NewSubscriber(a.nc, &a.c.NATS, a.cache)
	if err = a.sub.Start(ctx); err != nil {
		return err
	}

	dashboardSvc, err := dashboard.New(&a.c.Dashboard, a.db.Metrics(), a.db.Activity(), a.cache)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create dashboard service",
			slog.String("err", err.Error()),
		)
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Permissions())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()),
		)
		return err
	}

	if a.cache != nil {
		a.wu = warmup.New(&a.c.Warmup, dashboardSvc)
		if err = a.wu.Start(ctx); err != nil {
			return err
		}
	} else {
		slog.Default().InfoContext(ctx, "warm-up worker skipped, dashboard cache disabled")
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, authS, apidashboard.New(dashboardSvc), a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}
	go func() {
		<-a.hs.Done()
		a.doneOnce.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.wu != nil && a.wu.Enabled() {
		if err := a.wu.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop warm-up worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.sub != nil {
		a.sub.Stop()
	}
	if a.nc != nil {
		a.nc.Close()
	}
	if cl, ok := a.cache.(interface{ Close() error }); ok {
		_ = cl.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
