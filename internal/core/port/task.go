package port

import (
	"context"

	"taskapp/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindAllByUser(ctx context.Context, email string) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// CreateTaskInput carries the caller-supplied fields for a new task.
// Lifecycle fields (completed, completedAt, createdAt, id) are never
// accepted on create.
type CreateTaskInput struct {
	UserEmail   string
	Title       string
	Description string
}

// TaskPatch is a partial update. A nil field is "leave unchanged"; a
// non-nil pointer to a zero value is an explicit assignment.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindAllByUser(ctx context.Context, email string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
