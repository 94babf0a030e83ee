package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/healthcare-platform/internal/config"
	"github.com/jwalitptl/healthcare-platform/internal/email"
	analysishandler "github.com/jwalitptl/healthcare-platform/internal/handler/analysis"
	consultationhandler "github.com/jwalitptl/healthcare-platform/internal/handler/consultation"
	"github.com/jwalitptl/healthcare-platform/internal/handler/dashboard"
	diagnosishandler "github.com/jwalitptl/healthcare-platform/internal/handler/diagnosis"
	"github.com/jwalitptl/healthcare-platform/internal/handler/health"
	planhandler "github.com/jwalitptl/healthcare-platform/internal/handler/healthplan"
	statshandler "github.com/jwalitptl/healthcare-platform/internal/handler/stats"
	"github.com/jwalitptl/healthcare-platform/internal/middleware"
	"github.com/jwalitptl/healthcare-platform/internal/repository/sqlstore"
	"github.com/jwalitptl/healthcare-platform/internal/router"
	"github.com/jwalitptl/healthcare-platform/internal/service/analysis"
	"github.com/jwalitptl/healthcare-platform/internal/service/consultation"
	"github.com/jwalitptl/healthcare-platform/internal/service/diagnosis"
	"github.com/jwalitptl/healthcare-platform/internal/service/healthplan"
	"github.com/jwalitptl/healthcare-platform/internal/service/stats"
	"github.com/jwalitptl/healthcare-platform/internal/validation"
	"github.com/jwalitptl/healthcare-platform/pkg/logger"
	"github.com/jwalitptl/healthcare-platform/pkg/messaging"
	"github.com/jwalitptl/healthcare-platform/pkg/messaging/redis"
	"github.com/jwalitptl/healthcare-platform/pkg/metrics"
	"github.com/jwalitptl/healthcare-platform/pkg/worker"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "api",
		Short:        "Healthcare platform API server",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: search ., ./config, /app/config)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create the schema if needed and serve HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes, seeding sample rows into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			noSeed, _ := cmd.Flags().GetBool("no-seed")

			cfg, l, err := bootstrap()
			if err != nil {
				return err
			}

			db, err := sqlstore.Open(cfg.Database.ToStoreConfig(), nil)
			if err != nil {
				l.Error(err, "Failed to open database")
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := db.Migrate(ctx, cfg.Database.SeedSamples && !noSeed); err != nil {
				l.Error(err, "Database setup failed")
				return err
			}
			l.Info("Database setup completed", "driver", cfg.Database.Driver)
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 30*time.Second, "Abort the setup after this long")
	cmd.Flags().Bool("no-seed", false, "Skip sample data even when seeding is enabled")
	return cmd
}

func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, logger.Setup(cfg.Log.ToLoggerConfig()), nil
}

func runServer() error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	m := metrics.NewMetrics(cfg.Monitoring.Namespace)

	// Initialize database
	db, err := sqlstore.Open(cfg.Database.ToStoreConfig(), m)
	if err != nil {
		l.Error(err, "Failed to connect to database")
		return err
	}
	defer db.Close()

	if err := db.Migrate(context.Background(), cfg.Database.SeedSamples); err != nil {
		l.Error(err, "Failed to prepare schema")
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize notification transports; both degrade to no-ops
	var broker messaging.Broker = messaging.NopBroker{}
	if cfg.Redis.Enabled {
		broker, err = redis.NewRedisBroker(ctx, cfg.Redis.ToBrokerConfig(), l.Zerolog())
		if err != nil {
			l.Warn("Redis unavailable, submission events will not be published", "error", err.Error())
			broker = messaging.NopBroker{}
		}
	}
	defer broker.Close()

	notifier := worker.NewNotifier(
		broker,
		email.NewService(cfg.SMTP.ToEmailConfig()),
		cfg.Notifications.ToWorkerConfig(),
		l.WithFields(map[string]interface{}{"component": "notifier"}),
		m,
	)
	go notifier.Start(ctx)

	// Initialize services
	v := validation.New()
	diagnosisSvc := diagnosis.NewService(sqlstore.NewPatientSubmissionRepository(db), v, notifier, m)
	consultationSvc := consultation.NewService(sqlstore.NewConsultationRepository(db), v, notifier, m)
	planSvc := healthplan.NewService(sqlstore.NewHealthcarePlanRepository(db), v, notifier, m)
	analysisSvc := analysis.NewService(sqlstore.NewDataAnalysisRepository(db), v, notifier, m)
	statsSvc := stats.NewService(sqlstore.NewStatsRepository(db), cfg.Stats.CacheTTL)

	metricsPath := ""
	if cfg.Monitoring.PrometheusEnabled {
		metricsPath = cfg.Monitoring.MetricsPath
	}

	sizeLimit := middleware.DefaultSizeLimitConfig()
	sizeLimit.MaxUploadSize = cfg.Server.MaxUploadBytes

	r := router.NewRouter(router.RouterConfig{
		Mode:             cfg.Server.Mode,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			Burst: cfg.RateLimit.Burst,
		},
		CORSConfig: middleware.CORSConfig{
			AllowOrigins:  cfg.Security.AllowedOrigins,
			AllowMethods:  cfg.Security.AllowedMethods,
			AllowHeaders:  cfg.Security.AllowedHeaders,
			ExposeHeaders: []string{"Content-Length", "Content-Type", middleware.HeaderXRequestID},
			MaxAge:        86400,
		},
		SizeLimit:      sizeLimit,
		RequestTimeout: cfg.Server.WriteTimeout,
		MetricsPath:    metricsPath,
	}, router.Handlers{
		Dashboard:    dashboard.NewHandler(),
		Health:       health.NewHandler(db),
		Diagnosis:    diagnosishandler.NewHandler(diagnosisSvc),
		Consultation: consultationhandler.NewHandler(consultationSvc),
		Plan:         planhandler.NewHandler(planSvc),
		Analysis:     analysishandler.NewHandler(analysisSvc),
		Stats:        statshandler.NewHandler(statsSvc),
	}, m)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		l.Error(err, "Server failed")
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error(err, "Server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
