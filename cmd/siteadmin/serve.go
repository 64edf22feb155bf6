package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"siteadmin/internal/api"
	"siteadmin/internal/api/middleware"
	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/service"
	"siteadmin/internal/storage/postgres"
	_ "siteadmin/swagger"
)

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer utils.Logger.Sync()

			utils.Logger.Info("Starting Site Admin API")
			utils.Logger.Debug("Configuration loaded", zap.Any("config", cfg.Redacted()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pool, err := pgxpool.New(ctx, cfg.DBURL)
			if err != nil {
				utils.Logger.Error("Database connection failed", zap.Error(err))
				return err
			}
			defer pool.Close()
			if err := pool.Ping(ctx); err != nil {
				utils.Logger.Error("Database ping failed", zap.Error(err))
				return err
			}
			utils.Logger.Info("Database connected")

			if !skipMigrations {
				if err := runMigrations(cfg.MigrationsURL, cfg.DBURL); err != nil {
					utils.Logger.Error("Database migration failed", zap.Error(err))
					return err
				}
				utils.Logger.Info("Database migrations completed successfully")
			}

			limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
			defer limiter.Stop()

			projectService := service.NewProjectService(postgres.NewPgStorage(pool), cfg.PaginationMaxLength)
			router := api.NewRouter(api.RouterConfig{
				ProjectService: projectService,
				MaxLength:      cfg.PaginationMaxLength,
				RateLimiter:    limiter,
			})

			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				utils.Logger.Info("Server starting", zap.String("address", server.Addr))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					utils.Logger.Error("Server failed", zap.Error(err))
					return err
				}
				return nil
			case <-ctx.Done():
			}

			utils.Logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")
	return cmd
}
