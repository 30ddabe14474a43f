package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/pkg/constants"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(apperrors.ErrInvalidJSON, "")
	}

	in, err := validators.ParseCreateTaskRequest(&req)
	if err != nil {
		return errorResponse(err, "")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), in)
	if err != nil {
		return errorResponse(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return errorResponse(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, dto.TaskListResponse{
		Count: len(tasks),
		Tasks: tasks,
	})
}

func (h *Handler) MarkDone(c echo.Context) error {
	raw := c.Param("id")
	if raw == "" {
		return errorResponse(apperrors.ErrTaskIDRequired, "")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return errorResponse(apperrors.ErrInvalidTaskID, "")
	}

	if err := h.taskService.CompleteTask(c.Request().Context(), id); err != nil {
		return errorResponse(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, dto.TaskStateResponse{
		ID:    id,
		State: string(constants.StateDone),
	})
}

func (h *Handler) Options(c echo.Context) error {
	resp := dto.OptionsResponse{}
	for _, s := range constants.TaskStates() {
		resp.States = append(resp.States, string(s))
	}
	for _, cat := range constants.TaskCategories() {
		resp.Categories = append(resp.Categories, string(cat))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// errorResponse hides storage details behind fallback; validation and
// request errors are reported verbatim.
func errorResponse(err error, fallback string) *echo.HTTPError {
	code := apperrors.StatusCode(err)

	var storageErr *apperrors.StorageError
	if errors.As(err, &storageErr) && fallback != "" {
		return echo.NewHTTPError(code, fallback).SetInternal(err)
	}
	return echo.NewHTTPError(code, err.Error()).SetInternal(err)
}
