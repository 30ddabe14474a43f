package services

import (
	"context"
	"strings"
	"time"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskStore interface {
	Insert(ctx context.Context, task *model.Task) (int64, error)
	SetState(ctx context.Context, id int64, state constants.TaskState) error
	ListAll(ctx context.Context) ([]model.Task, error)
}

// TaskInput carries the raw form fields. Empty State means planned and a nil
// CreatedAt means now.
type TaskInput struct {
	Name        string
	Description string
	State       string
	Category    string
	CreatedBy   string
	CreatedAt   *time.Time
}

type TaskService struct {
	repo TaskStore
	now  func() time.Time
}

type Option func(*TaskService)

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(repo TaskStore, opts ...Option) *TaskService {
	s := &TaskService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskService) CreateTask(ctx context.Context, in TaskInput) (*model.Task, error) {
	task, err := s.buildTask(in)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, task)
	if err != nil {
		return nil, err
	}
	task.ID = id

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.ListAll(ctx)
}

// CompleteTask marks id as done whatever its current state. Unknown ids are
// not reported.
func (s *TaskService) CompleteTask(ctx context.Context, id int64) error {
	return s.repo.SetState(ctx, id, constants.StateDone)
}

func (s *TaskService) buildTask(in TaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}

	category, ok := constants.ParseTaskCategory(in.Category)
	if !ok {
		return nil, apperrors.NewValidationError("category", "must be one of school, work, personal")
	}

	state := constants.DefaultTaskState
	if in.State != "" {
		if state, ok = constants.ParseTaskState(in.State); !ok {
			return nil, apperrors.NewValidationError("state", "must be one of planned, in-progress, done")
		}
	}

	if strings.TrimSpace(in.CreatedBy) == "" {
		return nil, apperrors.NewValidationError("created_by", "must not be empty")
	}

	createdAt := s.now()
	if in.CreatedAt != nil {
		if in.CreatedAt.IsZero() {
			return nil, apperrors.NewValidationError("created_at", "must be a valid timestamp")
		}
		createdAt = *in.CreatedAt
	}

	return &model.Task{
		Name:        in.Name,
		Description: in.Description,
		State:       state,
		Category:    category,
		CreatedAt:   createdAt,
		CreatedBy:   in.CreatedBy,
	}, nil
}
