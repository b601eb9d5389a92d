package main

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dashboard-api",
		Short: "Admin dashboard analytics service for the food delivery platform",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the dashboard-api service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE:  migrateRun,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert generated demo restaurants, drivers and orders",
		RunE:  seedRun,
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Issue a signed admin token for local use",
		RunE:  tokenRun,
	}

	cfgFile string
	version string

	seedRestaurants int
	seedOrders      int
	seedDays        int

	tokenSubject string
	tokenRoles   []string
	tokenTTL     string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")

	seedCmd.Flags().IntVar(&seedRestaurants, "restaurants", 10, "number of restaurants to create")
	seedCmd.Flags().IntVar(&seedOrders, "orders", 200, "number of orders to create")
	seedCmd.Flags().IntVar(&seedDays, "days", 400, "spread order timestamps over this many past days")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().StringSliceVar(&tokenRoles, "role", []string{"ADMIN"}, "role claim, repeatable")
	tokenCmd.Flags().StringVar(&tokenTTL, "ttl", "", "token lifetime, defaults to auth.jwt_ttl")

	rootCmd.AddCommand(versionCmd, migrateCmd, seedCmd, tokenCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service",
			slog.String("err", err.Error()),
		)
		os.Exit(-1)
	}
}
