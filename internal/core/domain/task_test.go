package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaultsCreatedAt(t *testing.T) {
	task := NewTask(TaskParams{
		UserEmail: "user@example.com",
		Title:     "write report",
	})

	assert.Empty(t, task.ID)
	assert.Equal(t, "user@example.com", task.UserEmail)
	assert.Equal(t, "write report", task.Title)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestNewTaskKeepsGivenFields(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(time.Hour)

	task := NewTask(TaskParams{
		ID:          "task-1",
		UserEmail:   "user@example.com",
		Title:       "write report",
		Description: "quarterly numbers",
		Completed:   true,
		CompletedAt: &completedAt,
		CreatedAt:   createdAt,
	})

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, createdAt, task.CreatedAt)
	assert.True(t, task.Completed)
	assert.Equal(t, &completedAt, task.CompletedAt)
}
