package service

import (
	"context"
	"time"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type TaskService struct {
	repo  port.TaskRepository
	users port.UserService
}

func NewTaskService(repo port.TaskRepository, users port.UserService) *TaskService {
	return &TaskService{repo: repo, users: users}
}

// CreateTask validates the inputs and the owner before anything touches
// the task repository. Tasks always start incomplete.
func (ts *TaskService) CreateTask(ctx context.Context, input port.CreateTaskInput) (domain.Task, error) {
	if input.UserEmail == "" {
		return domain.Task{}, domain.NewError(domain.KindBadRequest, "userEmail is required")
	}

	if input.Title == "" {
		return domain.Task{}, domain.NewError(domain.KindBadRequest, "title is required")
	}

	if _, err := ts.users.FindUser(ctx, input.UserEmail); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.Task{}, domain.NewError(domain.KindNotFound, "User does not exist")
		}

		return domain.Task{}, err
	}

	task := domain.NewTask(domain.TaskParams{
		UserEmail:   input.UserEmail,
		Title:       input.Title,
		Description: input.Description,
	})

	created, err := ts.repo.Create(ctx, task)

	if err != nil {
		return domain.Task{}, err
	}

	return created, nil
}

func (ts *TaskService) FindByID(ctx context.Context, id string) (domain.Task, error) {
	task, err := ts.repo.FindByID(ctx, id)

	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.Task{}, domain.NewError(domain.KindNotFound, "Task not found")
		}

		return domain.Task{}, err
	}

	return task, nil
}

// FindAllByUser returns the user's tasks ordered by creation time
// ascending. A user with no tasks gets an empty list, not an error.
func (ts *TaskService) FindAllByUser(ctx context.Context, email string) ([]domain.Task, error) {
	if _, err := ts.users.FindUser(ctx, email); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NewError(domain.KindNotFound, "User does not exist")
		}

		return nil, err
	}

	tasks, err := ts.repo.FindAllByUser(ctx, email)

	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	return tasks, nil
}

// UpdateTask applies a partial patch. Only non-nil fields are touched.
// completed=true stamps completedAt; completed=false clears it; an absent
// completed leaves both untouched.
func (ts *TaskService) UpdateTask(ctx context.Context, id string, patch port.TaskPatch) (domain.Task, error) {
	task, err := ts.FindByID(ctx, id)

	if err != nil {
		return domain.Task{}, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}

	if patch.Completed != nil {
		task.Completed = *patch.Completed

		if task.Completed {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	updated, err := ts.repo.Update(ctx, task)

	if err != nil {
		return domain.Task{}, err
	}

	return updated, nil
}

// DeleteTask confirms existence first. Two round-trips, accepted for
// simplicity; the sequence is not atomic.
func (ts *TaskService) DeleteTask(ctx context.Context, id string) error {
	if _, err := ts.FindByID(ctx, id); err != nil {
		return err
	}

	return ts.repo.Delete(ctx, id)
}
