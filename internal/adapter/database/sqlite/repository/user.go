package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	tel "taskapp/internal/core/telemetry"
)

type UserRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *sqlite.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{db: db, telemetry: telemetry}
}

func (ur *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "FindByEmail", "user", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "users",
	})
	defer span.End()

	startTime := time.Now()

	query := ur.db.QueryBuilder.Select("email", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return domain.User{}, err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "FindByEmail", "user", stmt, args)

	var user domain.User

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(&user.Email, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus("ok", "")
		ur.telemetry.RecordRepositoryOperation(ctx, "FindByEmail", "user", time.Since(startTime), nil)
		return domain.User{}, domain.NewError(domain.KindNotFound, "user not found")
	}

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		ur.telemetry.RecordRepositoryOperation(ctx, "FindByEmail", "user", time.Since(startTime), err)
		return domain.User{}, err
	}

	span.SetStatus("ok", "")
	ur.telemetry.RecordRepositoryOperation(ctx, "FindByEmail", "user", time.Since(startTime), nil)

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) error {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Create", "user", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "users",
	})
	defer span.End()

	startTime := time.Now()

	query := ur.db.QueryBuilder.Insert("users").
		Columns("email", "created_at").
		Values(user.Email, user.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		return err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "Create", "user", stmt, args)

	if _, err := ur.db.ExecContext(ctx, stmt, args...); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(startTime), err)
		return err
	}

	span.SetStatus("ok", "")
	ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(startTime), nil)

	return nil
}
