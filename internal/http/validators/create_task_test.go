package validators

import (
	"errors"
	"testing"
	"time"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestParseCreateTaskRequest_NoCreatedAt(t *testing.T) {
	in, err := ParseCreateTaskRequest(&dto.CreateTaskRequest{Name: "a", Category: "work", CreatedBy: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.CreatedAt != nil {
		t.Errorf("expected nil CreatedAt, got %v", in.CreatedAt)
	}
	if in.Name != "a" || in.Category != "work" || in.CreatedBy != "b" {
		t.Errorf("fields not copied: %+v", in)
	}
}

func TestParseCreatedAt(t *testing.T) {
	ts, err := ParseCreatedAt("2024-04-02T10:11:12Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(time.Date(2024, 4, 2, 10, 11, 12, 0, time.UTC)) {
		t.Errorf("unexpected timestamp %v", ts)
	}

	day, err := ParseCreatedAt("2024-04-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.Local)) {
		t.Errorf("expected local midnight, got %v", day)
	}

	_, err = ParseCreatedAt("02/04/2024")
	var validationErr *apperrors.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "created_at" {
		t.Errorf("expected created_at validation error, got %v", err)
	}
}
