// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/users/models"
)

const (
	userColumns = "username, first_name, last_name, email, is_admin"

	msgInvalidCredentials = "Invalid username/password"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type userRow struct {
	models.User
	Password string `db:"password"`
}

type postgresRepository struct {
	client     *postgres.Client
	bcryptCost int
}

// NewPostgresRepository creates a new PostgreSQL repository for users.
// Passwords are hashed with bcryptCost.
func NewPostgresRepository(client *postgres.Client, bcryptCost int) UserRepository {
	return &postgresRepository{client: client, bcryptCost: bcryptCost}
}

func notFound(username string) error {
	return apierrors.NewNotFoundError(fmt.Sprintf("No user: %s", username))
}

func (r *postgresRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.client.Executor(ctx), &row,
		"SELECT "+userColumns+", password FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := utils.CompareHash(row.Password, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return nil, apierrors.NewUnauthorizedError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}
	return &row.User, nil
}

func (r *postgresRepository) Register(ctx context.Context, user *models.NewUser) (*models.User, error) {
	hashed, err := utils.Hash(user.Password, r.bcryptCost)
	if err != nil {
		return nil, err
	}

	stmt, args, err := psql.Insert("users").
		Columns("username", "password", "first_name", "last_name", "email", "is_admin").
		Values(user.Username, hashed, user.FirstName, user.LastName, user.Email, user.IsAdmin).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user insert: %w", err)
	}

	var created models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, stmt, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apierrors.NewBadRequestError(fmt.Sprintf("Duplicate username: %s", user.Username))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &users,
		"SELECT "+userColumns+" FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	executor := r.client.Executor(ctx)

	var detail models.UserDetail
	err := sqlx.GetContext(ctx, executor, &detail.User,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	detail.Applications = []int{}
	err = sqlx.SelectContext(ctx, executor, &detail.Applications,
		"SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id", username)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return &detail, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, updates query.FieldUpdates) (*models.User, error) {
	updates, err := r.hashPassword(updates)
	if err != nil {
		return nil, err
	}

	set, err := query.PartialUpdate(updates, models.Columns)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf("UPDATE users SET %s WHERE username = $%d RETURNING %s",
		set.Set(), set.NextPlaceholder(), userColumns)

	var user models.User
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &user, stmt, set.Args(username)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// hashPassword returns a copy of updates with any password replaced by its hash.
func (r *postgresRepository) hashPassword(updates query.FieldUpdates) (query.FieldUpdates, error) {
	out := make(query.FieldUpdates, 0, len(updates))
	for _, u := range updates {
		if u.Field == "password" {
			plain, ok := u.Value.(string)
			if !ok {
				return nil, apierrors.NewBadRequestError("password must be a string")
			}
			hashed, err := utils.Hash(plain, r.bcryptCost)
			if err != nil {
				return nil, err
			}
			u.Value = hashed
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *postgresRepository) Remove(ctx context.Context, username string) error {
	stmt, args, err := psql.Delete("users").Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user delete: %w", err)
	}

	result, err := r.client.Executor(ctx).ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound(username)
	}
	return nil
}

func (r *postgresRepository) ApplyToJob(ctx context.Context, username string, jobID int) error {
	return r.client.WithTransaction(ctx, func(txCtx context.Context) error {
		executor := r.client.Executor(txCtx)

		var found int
		err := sqlx.GetContext(txCtx, executor, &found, "SELECT id FROM jobs WHERE id = $1", jobID)
		if errors.Is(err, sql.ErrNoRows) {
			return apierrors.NewNotFoundError(fmt.Sprintf("No job: %d", jobID))
		}
		if err != nil {
			return fmt.Errorf("failed to check job: %w", err)
		}

		var name string
		err = sqlx.GetContext(txCtx, executor, &name, "SELECT username FROM users WHERE username = $1", username)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(username)
		}
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}

		stmt, args, err := psql.Insert("applications").
			Columns("job_id", "username").
			Values(jobID, username).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build application insert: %w", err)
		}

		if _, err := executor.ExecContext(txCtx, stmt, args...); err != nil {
			if postgres.IsUniqueViolation(err) {
				return apierrors.NewBadRequestError(fmt.Sprintf("Already applied to job: %d", jobID))
			}
			return fmt.Errorf("failed to apply to job: %w", err)
		}
		return nil
	})
}
