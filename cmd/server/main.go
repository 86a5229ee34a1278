// @title                       Dog Training Dashboard API
// @version                     1.0
// @description                 Credential login, session tokens and the admin/client areas of the dog training dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
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

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dogtraining/dashboard/internal/api"
	"github.com/dogtraining/dashboard/internal/core/ports"
	"github.com/dogtraining/dashboard/internal/core/service"
	"github.com/dogtraining/dashboard/internal/infrastructure/db/memory"
	mongodb "github.com/dogtraining/dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/dogtraining/dashboard/internal/infrastructure/db/redis"
	"github.com/dogtraining/dashboard/internal/infrastructure/seed"
	"github.com/dogtraining/dashboard/internal/pkg/config"
	"github.com/dogtraining/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// repositories is the set of stores the services run on, whichever driver
// backs them.
type repositories struct {
	users         ports.UserStore
	clients       ports.ClientRepository
	media         ports.MediaRepository
	notifications ports.NotificationRepository
	payments      ports.PaymentRepository
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development(), Service: "dashboard"})

	repos, db, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	authOpts := []service.AuthOption{}
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
		authOpts = append(authOpts, service.WithThrottle(throttle))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttle enabled")
	}

	if cfg.SeedDemoData {
		err := seed.Load(ctx, seed.Targets{
			Users:         repos.users,
			Clients:       repos.clients,
			Media:         repos.media,
			Notifications: repos.notifications,
		}, time.Now(), log)
		if err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	authService, err := service.NewAuthService(repos.users, cfg.JWTSecret, cfg.TokenTTL, log, authOpts...)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Auth:          authService,
		Clients:       service.NewClientService(repos.clients, log),
		Media:         service.NewMediaService(repos.media, repos.clients, repos.notifications, log),
		Notifications: service.NewNotificationService(repos.notifications, repos.clients, log),
		Payments:      service.NewPaymentService(repos.payments, repos.clients, repos.notifications, log),
		Logger:        log,
		Mongo:         db,
		Redis:         rdb,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// openStore selects the repository driver. The returned close func is always
// safe to call.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, *mongo.Database, func(), error) {
	if cfg.StoreDriver != config.StoreMongo {
		s := memory.NewStores()
		log.Info().Msg("using in-memory store")
		return repositories{
			users:         s.Users,
			clients:       s.Clients,
			media:         s.Media,
			notifications: s.Notifications,
			payments:      s.Payments,
		}, nil, func() {}, nil
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return repositories{}, nil, nil, err
	}
	closeFn := func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}

	s := mongodb.NewStores(db)
	if err := s.EnsureIndexes(ctx); err != nil {
		closeFn()
		return repositories{}, nil, nil, err
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
	return repositories{
		users:         s.Users,
		clients:       s.Clients,
		media:         s.Media,
		notifications: s.Notifications,
		payments:      s.Payments,
	}, db, closeFn, nil
}
