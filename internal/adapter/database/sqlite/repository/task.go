package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	tel "taskapp/internal/core/telemetry"
)

type TaskRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewTaskRepository(db *sqlite.DB, telemetry port.Telemetry) port.TaskRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TaskRepository{db: db, telemetry: telemetry}
}

// Create stores the task and assigns its id when absent, mirroring a
// document store handing out ids on insert.
func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
	})
	defer span.End()

	startTime := time.Now()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	query := tr.db.QueryBuilder.Insert("tasks").
		Columns("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		Values(task.ID, task.UserEmail, task.Title, task.Description, task.Completed, task.CompletedAt, task.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return domain.Task{}, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Create", "task", stmt, args)

	if _, err := tr.db.ExecContext(ctx, stmt, args...); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "task", time.Since(startTime), err)
		return domain.Task{}, err
	}

	span.SetAttributes(map[string]interface{}{"task.id": task.ID})
	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "Create", "task", time.Since(startTime), nil)

	return task, nil
}

func (tr *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "FindByID", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
		"task.id":   id,
	})
	defer span.End()

	startTime := time.Now()

	query := tr.db.QueryBuilder.
		Select("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		From("tasks").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return domain.Task{}, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "FindByID", "task", stmt, args)

	task, err := scanTask(tr.db.QueryRowContext(ctx, stmt, args...))

	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus("ok", "")
		tr.telemetry.RecordRepositoryOperation(ctx, "FindByID", "task", time.Since(startTime), nil)
		return domain.Task{}, domain.NewError(domain.KindNotFound, "task not found")
	}

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "FindByID", "task", time.Since(startTime), err)
		return domain.Task{}, err
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "FindByID", "task", time.Since(startTime), nil)

	return task, nil
}

func (tr *TaskRepository) FindAllByUser(ctx context.Context, email string) ([]domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "FindAllByUser", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
	})
	defer span.End()

	startTime := time.Now()

	query := tr.db.QueryBuilder.
		Select("id", "user_email", "title", "description", "completed", "completed_at", "created_at").
		From("tasks").
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at ASC, id ASC")

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return nil, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "FindAllByUser", "task", stmt, args)

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "FindAllByUser", "task", time.Since(startTime), err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)

	for rows.Next() {
		task, err := scanTask(rows)

		if err != nil {
			span.SetStatus("error", err.Error())
			span.RecordError(err)
			tr.telemetry.RecordRepositoryOperation(ctx, "FindAllByUser", "task", time.Since(startTime), err)
			return nil, err
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "FindAllByUser", "task", time.Since(startTime), err)
		return nil, err
	}

	span.SetAttributes(map[string]interface{}{"db.rows_returned": len(tasks)})
	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "FindAllByUser", "task", time.Since(startTime), nil)

	return tasks, nil
}

func (tr *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Update", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
		"task.id":   task.ID,
	})
	defer span.End()

	startTime := time.Now()

	query := tr.db.QueryBuilder.Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("completed", task.Completed).
		Set("completed_at", task.CompletedAt).
		Where(sq.Eq{"id": task.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return domain.Task{}, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Update", "task", stmt, args)

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Update", "task", time.Since(startTime), err)
		return domain.Task{}, err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		span.SetStatus("ok", "")
		tr.telemetry.RecordRepositoryOperation(ctx, "Update", "task", time.Since(startTime), nil)
		return domain.Task{}, domain.NewError(domain.KindNotFound, "task not found")
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "Update", "task", time.Since(startTime), nil)

	return tr.FindByID(ctx, task.ID)
}

func (tr *TaskRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Delete", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
		"task.id":   id,
	})
	defer span.End()

	startTime := time.Now()

	stmt, args, err := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Delete", "task", stmt, args)

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "task", time.Since(startTime), err)
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		span.SetStatus("ok", "")
		tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "task", time.Since(startTime), nil)
		return domain.NewError(domain.KindNotFound, "task not found")
	}

	span.SetStatus("ok", "")
	tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "task", time.Since(startTime), nil)

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
