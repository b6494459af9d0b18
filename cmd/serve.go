package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"contacts-api/config"
	"contacts-api/internal/handlers"
	"contacts-api/internal/ratelimit"
	"contacts-api/internal/repositories"
	"contacts-api/internal/services"
	"contacts-api/internal/utils"
	"contacts-api/internal/wsnotify"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			utils.InitLogger(cfg.Log.Level, cfg.Log.Format)
			return serve(cmd.Context(), cfg)
		},
	}
}

func newAvatarStore(cfg *config.Config) (services.AvatarStore, error) {
	if cfg.Avatars.Backend == "s3" {
		return services.NewS3AvatarStore(cfg.Avatars.S3)
	}
	return services.NewLocalAvatarStore(cfg.Server.PublicDir), nil
}

// newRateLimitStore returns the store and a function releasing it.
func newRateLimitStore(ctx context.Context, cfg config.RateLimitConfig) (ratelimit.Store, func(), error) {
	if cfg.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("error connecting to redis: %w", err)
		}
		return ratelimit.NewRedisStore(client, cfg.Redis.Prefix), func() { client.Close() }, nil
	}

	store := ratelimit.NewMemoryStore()
	janitorCtx, cancel := context.WithCancel(ctx)
	store.StartJanitor(janitorCtx, cfg.Window)
	return store, cancel, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := config.ConnectDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.EnsureSchema(ctx, db, cfg.Database.Driver); err != nil {
		return err
	}

	avatars, err := newAvatarStore(cfg)
	if err != nil {
		return err
	}
	cleaner := services.NewAvatarCleaner(avatars)

	limitStore, closeLimitStore, err := newRateLimitStore(ctx, cfg.RateLimit)
	if err != nil {
		return err
	}
	defer closeLimitStore()

	origins := handlers.NewOriginPolicy(cfg.CORS.AllowedOrigins)
	events := wsnotify.NewManager(origins.CheckRequest)

	contacts := services.NewContactService(
		repositories.NewSQLContactRepository(db),
		avatars,
		cleaner,
		events,
	)

	router := handlers.NewRouter(handlers.RouterConfig{
		Contacts: contacts,
		Events:   events,
		Origins:  origins,
		RateLimit: ratelimit.Options{
			Store:              limitStore,
			Limit:              cfg.RateLimit.Limit,
			Window:             cfg.RateLimit.Window,
			KeyHeader:          cfg.RateLimit.KeyHeader,
			TrustXForwardedFor: cfg.RateLimit.TrustXForwardedFor,
		},
		PublicDir:    cfg.Server.PublicDir,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serverErr := make(chan error, 1)
	go func() {
		utils.LogInfo("Server is running on %s", cfg.Server.Addr)
		utils.LogInfo("API docs available at /api-docs/index.html")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-stop:
	case <-ctx.Done():
	}
	utils.LogInfo("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	events.CloseAll()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Error shutting down server: %v", err)
	}
	cleaner.Wait()

	utils.LogInfo("Server stopped successfully")
	return nil
}
