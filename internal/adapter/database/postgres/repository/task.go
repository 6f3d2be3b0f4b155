package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	database "taskapp/internal/adapter/database/postgres"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

type TaskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	query := tr.db.QueryBuilder.Insert("tasks").
		Columns("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		Values(task.ID, task.UserEmail, task.Title, task.Description, task.Completed, task.CompletedAt, task.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	if _, err := tr.db.Exec(ctx, stmt, args...); err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		From("tasks").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	task, err := scanTask(tr.db.QueryRow(ctx, stmt, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, domain.NewError(domain.KindNotFound, "task not found")
	}

	if err != nil {
		slog.Error("Error getting task by id", "error", err)
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) FindAllByUser(ctx context.Context, email string) ([]domain.Task, error) {
	query := tr.db.QueryBuilder.
		Select("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		From("tasks").
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at ASC, id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing tasks", "error", err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)

	for rows.Next() {
		task, err := scanTask(rows)

		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (tr *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := tr.db.QueryBuilder.Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("completed", task.Completed).
		Set("completed_at", task.CompletedAt).
		Where(sq.Eq{"id": task.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating task", "error", err)
		return domain.Task{}, err
	}

	if result.RowsAffected() == 0 {
		return domain.Task{}, domain.NewError(domain.KindNotFound, "task not found")
	}

	return tr.FindByID(ctx, task.ID)
}

func (tr *TaskRepository) Delete(ctx context.Context, id string) error {
	stmt, args, err := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting task", "error", err)
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, "task not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var task domain.Task
	var completedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.UserEmail,
		&task.Title,
		&task.Description,
		&task.Completed,
		&completedAt,
		&task.CreatedAt,
	)

	if err != nil {
		return domain.Task{}, err
	}

	if completedAt.Valid {
		at := completedAt.Time
		task.CompletedAt = &at
	}

	return task, nil
}
