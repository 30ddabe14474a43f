package validators

import (
	"strings"
	"time"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/services"
)

// dateLayout is what a date picker submits; the task is stamped at local midnight.
const dateLayout = "2006-01-02"

func ParseCreateTaskRequest(r *dto.CreateTaskRequest) (services.TaskInput, error) {
	in := services.TaskInput{
		Name:        r.Name,
		Description: r.Description,
		State:       r.State,
		Category:    r.Category,
		CreatedBy:   r.CreatedBy,
	}

	raw := strings.TrimSpace(r.CreatedAt)
	if raw == "" {
		return in, nil
	}

	createdAt, err := ParseCreatedAt(raw)
	if err != nil {
		return services.TaskInput{}, err
	}
	in.CreatedAt = &createdAt

	return in, nil
}

// ParseCreatedAt accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseCreatedAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.NewValidationError("created_at", "must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}
