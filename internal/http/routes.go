package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, limiter middleware.Limiter, log *slog.Logger) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.RateLimiter(limiter, log))

	e.GET("/healthz", h.Health)
	e.GET("/options", h.Options)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks/:id/done", h.MarkDone)
}
