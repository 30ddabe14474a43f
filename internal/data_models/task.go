package dto

import model "task-tracker.com/task-tracker/pkg/models"

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	State       string `json:"state"`
	Category    string `json:"category"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

type TaskListResponse struct {
	Count int          `json:"count"`
	Tasks []model.Task `json:"tasks"`
}

type TaskStateResponse struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

type OptionsResponse struct {
	States     []string `json:"states"`
	Categories []string `json:"categories"`
}
