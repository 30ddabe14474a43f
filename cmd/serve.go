package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Starts the task tracker HTTP API: submit tasks, list them and mark them done",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}

			var limiter middleware.Limiter = middleware.NewMemoryLimiter(a.cfg.RateLimit, time.Minute)
			if a.cfg.RedisAddr != "" {
				redisClient, err := config.NewRedisClient(a.cfg.RedisAddr)
				if err != nil {
					return err
				}
				defer redisClient.Close()

				limiter = middleware.NewRedisLimiter(redisClient, a.cfg.RedisKeyPrefix, a.cfg.RateLimit, time.Minute)
				a.log.Info("using redis rate limiter", "address", a.cfg.RedisAddr)
			}

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true

			handler := httpapi.NewHandler(a.taskService)
			httpapi.Register(e, handler, limiter, a.log)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				a.log.Info("HTTP server listening", "address", a.cfg.AppURL)
				if err := e.Start(a.cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.log.Error("server stopped", "error", err)
					stop()
				}
			}()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second,
			)
			defer cancel()

			if err := e.Shutdown(shutdownCtx); err != nil {
				return err
			}

			a.log.Info("HTTP server shut down gracefully")
			return nil
		},
	}
}
