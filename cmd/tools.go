package main

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tastyhub/dashboard-manager/app"
	"github.com/tastyhub/dashboard-manager/config"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/events"
	"github.com/tastyhub/dashboard-manager/internal/seed"
	"github.com/tastyhub/dashboard-manager/internal/store"
)

func migrateRun(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequirePersistent("migrate"); err != nil {
		return err
	}
	cfg.DB.Automigrate = true
	st, err := store.New(context.Background(), cfg.DB)
	if err != nil {
		return err
	}
	st.Close()
	return nil
}

func seedRun(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	// a memory store would be discarded on exit, use storage.seed instead
	if err := cfg.RequirePersistent("seed"); err != nil {
		return err
	}
	ctx := context.Background()

	repo, err := app.OpenRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	nc, err := events.Connect(&cfg.NATS)
	if err != nil {
		return err
	}
	if nc != nil {
		defer nc.Close()
	}

	sc := seed.DefaultConfig()
	sc.Restaurants = seedRestaurants
	sc.Orders = seedOrders
	sc.Days = seedDays
	res, err := seed.New(repo, events.NewPublisher(nc, &cfg.NATS)).Run(ctx, sc)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	if nc != nil {
		if err := nc.Flush(); err != nil {
			logger.ErrorContext(ctx, "can't flush change event",
				slog.String("err", err.Error()),
			)
		}
	}

	logger.InfoContext(ctx, "seed finished",
		slog.String("run_id", res.RunId),
		slog.Int("restaurants", res.Restaurants),
		slog.Int("products", res.Products),
		slog.Int("drivers", res.Drivers),
		slog.Int("shipping_agents", res.ShippingAgents),
		slog.Int("customers", res.Customers),
		slog.Int("orders", res.Orders),
	)
	return nil
}

func tokenRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	var ttl time.Duration
	if tokenTTL != "" {
		ttl, err = time.ParseDuration(tokenTTL)
		if err != nil {
			return fmt.Errorf("can't parse ttl %q: %w", tokenTTL, err)
		}
	}
	authS, err := auth.New(&cfg.Auth, nil)
	if err != nil {
		return err
	}
	tok, err := authS.IssueToken(tokenSubject, tokenRoles, ttl)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
