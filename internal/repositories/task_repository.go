package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	state TEXT CHECK (state IN ('planned', 'in-progress', 'done')),
	category TEXT CHECK (category IN ('school', 'work', 'personal')),
	created_at TEXT,
	created_by TEXT
)`

// Timestamps are written as RFC 3339. The naive layouts cover rows written
// by earlier clients that stored isoformat() without a zone.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Opener returns a new handle on the task store. The repository closes it
// after every operation.
type Opener func() (*gorm.DB, error)

type TaskRepository struct {
	open Opener
}

type taskRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
	State       string  `gorm:"column:state"`
	Category    string  `gorm:"column:category"`
	CreatedAt   string  `gorm:"column:created_at"`
	CreatedBy   string  `gorm:"column:created_by"`
}

func (taskRecord) TableName() string {
	return "tasks"
}

func NewTaskRepository(open Opener) *TaskRepository {
	return &TaskRepository{open: open}
}

func (r *TaskRepository) Initialize(ctx context.Context) error {
	return r.withConn(ctx, "initialize", func(db *gorm.DB) error {
		return db.Exec(createTasksTable).Error
	})
}

// Insert writes one row and returns the id sqlite assigned to it.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) (int64, error) {
	description := task.Description
	record := &taskRecord{
		Name:        task.Name,
		Description: &description,
		State:       string(task.State),
		Category:    string(task.Category),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339Nano),
		CreatedBy:   task.CreatedBy,
	}

	err := r.withConn(ctx, "insert", func(db *gorm.DB) error {
		return db.Create(record).Error
	})
	if err != nil {
		return 0, err
	}

	return record.ID, nil
}

// SetState does not report whether a row matched id.
func (r *TaskRepository) SetState(ctx context.Context, id int64, state constants.TaskState) error {
	return r.withConn(ctx, "set state", func(db *gorm.DB) error {
		return db.Model(&taskRecord{}).Where("id = ?", id).Update("state", string(state)).Error
	})
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var records []taskRecord
	err := r.withConn(ctx, "list", func(db *gorm.DB) error {
		return db.Find(&records).Error
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		task, err := rec.toModel()
		if err != nil {
			return nil, apperrors.NewStorageError("list", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) withConn(ctx context.Context, op string, fn func(db *gorm.DB) error) (err error) {
	db, err := r.open()
	if err != nil {
		return apperrors.NewStorageError(op, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.NewStorageError(op, err)
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil && err == nil {
			err = apperrors.NewStorageError(op, closeErr)
		}
	}()

	if err := fn(db.WithContext(ctx)); err != nil {
		return apperrors.NewStorageError(op, err)
	}
	return nil
}

func (rec taskRecord) toModel() (model.Task, error) {
	task := model.Task{
		ID:        rec.ID,
		Name:      rec.Name,
		State:     constants.TaskState(rec.State),
		Category:  constants.TaskCategory(rec.Category),
		CreatedBy: rec.CreatedBy,
	}
	if rec.Description != nil {
		task.Description = *rec.Description
	}

	if rec.CreatedAt != "" {
		createdAt, err := parseCreatedAt(rec.CreatedAt)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d: %w", rec.ID, err)
		}
		task.CreatedAt = createdAt
	}

	return task, nil
}

func parseCreatedAt(s string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized created_at %q", s)
}
