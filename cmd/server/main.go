package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signaldeck/signaldeck-backend-go/internal/api"
	"github.com/signaldeck/signaldeck-backend-go/internal/config"
	"github.com/signaldeck/signaldeck-backend-go/internal/dataset"
	"github.com/signaldeck/signaldeck-backend-go/internal/metrics"
	"github.com/signaldeck/signaldeck-backend-go/internal/models"
	"github.com/signaldeck/signaldeck-backend-go/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "signaldeck-server",
		Short: "Backend for the SignalDeck fund-filing dashboard",
	}
	root.AddCommand(serveCmd(), checkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newLoader(cfg *config.Config, log *zap.Logger) (*dataset.Loader, error) {
	var manifest map[models.Region]string
	if cfg.RegionsManifest != "" {
		var err error
		manifest, err = dataset.LoadManifest(cfg.RegionsManifest)
		if err != nil {
			return nil, err
		}
	}
	return dataset.NewLoader(cfg.DataPath, manifest, log), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			loader, err := newLoader(cfg, log)
			if err != nil {
				return err
			}

			metrics.Register()
			loader.OnLoad(metrics.ObserveDatasetLoad)

			cache := dataset.NewCache(loader)
			dashboardService := service.NewDashboardService(cache, log)

			router := api.SetupRouter(cfg, log, dashboardService)

			log.Info("server starting", zap.String("port", cfg.Port))
			return router.Run(cfg.Port)
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <region>",
		Short: "Validate that a region's dataset loads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, ok := models.ParseRegion(args[0])
			if !ok {
				return fmt.Errorf("unknown region %q", args[0])
			}

			cfg := config.Load()
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			loader, err := newLoader(cfg, log)
			if err != nil {
				return err
			}

			ds, err := loader.Load(region)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d records, %d sectors\n", region, len(ds.Records), len(ds.Sectors()))
			return nil
		},
	}
}
