package domain

import "time"

// Task is owned by a user through UserEmail. The id is assigned by the
// repository on create and is empty before persistence.
type Task struct {
	ID          string
	UserEmail   string
	Title       string
	Description string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

type TaskParams struct {
	ID          string
	UserEmail   string
	Title       string
	Description string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// NewTask fills defaults and nothing else. Input validation and the
// completed/completedAt pairing are the task service's responsibility, so
// records loaded from the store can be rebuilt without re-checking.
func NewTask(params TaskParams) Task {
	createdAt := params.CreatedAt

	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return Task{
		ID:          params.ID,
		UserEmail:   params.UserEmail,
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
		CompletedAt: params.CompletedAt,
		CreatedAt:   createdAt,
	}
}
