package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restodesk/backoffice/internal/api"
	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/db"
	"github.com/restodesk/backoffice/internal/events"
	"github.com/restodesk/backoffice/internal/integration/posclient"
	"github.com/restodesk/backoffice/internal/integration/stripeconnect"
	"github.com/restodesk/backoffice/internal/integration/twiliomsg"
	"github.com/restodesk/backoffice/internal/jobs"
	"github.com/restodesk/backoffice/internal/logger"
	"github.com/restodesk/backoffice/internal/metrics"
	"github.com/restodesk/backoffice/internal/realtime"
	"github.com/restodesk/backoffice/internal/repository/dao"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 15 * time.Second
)

func Start() error {
	conf, err := config.Watch(configPath, onConfigChange, func(err error) {
		zap.L().Warn("config reload rejected", zap.Error(err))
	})
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer logger.Sync()
	if err = logger.SetLevel(conf.Log.Level); err != nil {
		zap.L().Warn("ignoring log level", zap.String("level", conf.Log.Level), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := openDatabase(conf.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	if conf.Database.Migrate {
		if err = dao.InitTables(database); err != nil {
			return fmt.Errorf("failed to migrate database -> %w", err)
		}
	}

	var redisClient *redis.Client
	if conf.Redis.Enabled {
		if redisClient, err = db.OpenRedis(ctx, conf.Redis); err != nil {
			return fmt.Errorf("failed to initialize redis -> %w", err)
		}
		defer redisClient.Close()
	} else {
		zap.L().Warn("redis disabled, onboarding snapshots and revoked tokens are kept in memory")
	}

	publisher, err := events.NewPublisher(conf.Broker)
	if err != nil {
		return fmt.Errorf("failed to initialize event publisher -> %w", err)
	}
	defer publisher.Close()

	hub := realtime.NewHub()
	go hub.Run(ctx)

	s, err := api.NewServer(conf, api.Dependencies{
		DB:        database,
		Redis:     redisClient,
		Publisher: publisher,
		Metrics:   metrics.NewRegistry(),
		Hub:       hub,
		POSTester: posclient.NewHTTPTester(conf.POS.TestTimeout, nil),
		Payments:  stripeconnect.New(conf.Stripe),
		Messages:  twiliomsg.New(conf.Twilio),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	if err = s.Auth.EnsureSuperAdmin(ctx, conf.Bootstrap.AdminEmail, conf.Bootstrap.AdminPassword, conf.Bootstrap.AdminName); err != nil {
		return fmt.Errorf("failed to bootstrap super admin -> %w", err)
	}

	scheduler := cron.New()
	sweeper := jobs.NewStaleOnboardingSweeper(s.Onboarding, publisher, s.Metrics, conf.Onboarding.StaleAfter)
	if _, err = sweeper.Schedule(scheduler, conf.Onboarding.SweepSchedule); err != nil {
		return fmt.Errorf("failed to schedule onboarding sweeper -> %w", err)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

// openDatabase honours DATABASE_URL for hosted postgres before falling back
// to the configured driver.
func openDatabase(conf *config.DatabaseConfig) (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return db.OpenPostgresWithURL(url)
	}

	return db.Open(conf)
}

// onConfigChange applies the settings that are safe to change at runtime.
func onConfigChange(conf *config.AppConfig) {
	if err := logger.SetLevel(conf.Log.Level); err != nil {
		zap.L().Warn("ignoring log level", zap.String("level", conf.Log.Level), zap.Error(err))
		return
	}
	zap.L().Info("config reloaded", zap.String("log_level", conf.Log.Level))
}
