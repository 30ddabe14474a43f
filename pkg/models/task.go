package model

import (
	"time"

	"task-tracker.com/task-tracker/pkg/constants"
)

type Task struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	State       constants.TaskState    `json:"state"`
	Category    constants.TaskCategory `json:"category"`
	CreatedAt   time.Time              `json:"created_at"`
	CreatedBy   string                 `json:"created_by"`
}
