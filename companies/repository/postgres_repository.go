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
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/query"
)

const companyColumns = "handle, name, description, num_employees, logo_url"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var companyFilter = query.NewFilter(
	query.Contains("nameLike", "name", func(f models.CompanyFilter) *string { return f.NameLike }),
	query.AtLeast("minEmployees", "num_employees", func(f models.CompanyFilter) *int { return f.MinEmployees }),
	query.AtMost("maxEmployees", "num_employees", func(f models.CompanyFilter) *int { return f.MaxEmployees }),
).WithRange(query.Range[models.CompanyFilter]{
	MinKey: "minEmployees",
	MaxKey: "maxEmployees",
	Bounds: func(f models.CompanyFilter) (*int, *int) { return f.MinEmployees, f.MaxEmployees },
})

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
	return &postgresRepository{client: client}
}

func notFound(handle string) error {
	return apierrors.NewNotFoundError(fmt.Sprintf("No company: %s", handle))
}

// Create inserts a new company
func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	stmt, args, err := psql.Insert("companies").
		Columns("handle", "name", "description", "num_employees", "logo_url").
		Values(company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL).
		Suffix("RETURNING " + companyColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build company insert: %w", err)
	}

	var created models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, stmt, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apierrors.NewBadRequestError(fmt.Sprintf("Duplicate company: %s", company.Handle))
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &created, nil
}

// FindAll lists companies matching the filter
func (r *postgresRepository) FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	where, err := companyFilter.Build(filter)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf("SELECT %s FROM companies %s ORDER BY name", companyColumns, where.Where())

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &companies, stmt, where.Values()...); err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}
	return companies, nil
}

// Get retrieves a company with its jobs
func (r *postgresRepository) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	executor := r.client.Executor(ctx)

	var detail models.CompanyDetail
	err := sqlx.GetContext(ctx, executor, &detail.Company,
		"SELECT "+companyColumns+" FROM companies WHERE handle = $1", handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(handle)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	detail.Jobs = []models.CompanyJob{}
	err = sqlx.SelectContext(ctx, executor, &detail.Jobs,
		"SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id", handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company jobs: %w", err)
	}
	return &detail, nil
}

// Update applies a partial update
func (r *postgresRepository) Update(ctx context.Context, handle string, updates query.FieldUpdates) (*models.Company, error) {
	set, err := query.PartialUpdate(updates, models.Columns)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf("UPDATE companies SET %s WHERE handle = $%d RETURNING %s",
		set.Set(), set.NextPlaceholder(), companyColumns)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &company, stmt, set.Args(handle)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(handle)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return &company, nil
}

// Remove deletes a company
func (r *postgresRepository) Remove(ctx context.Context, handle string) error {
	stmt, args, err := psql.Delete("companies").Where(sq.Eq{"handle": handle}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build company delete: %w", err)
	}

	result, err := r.client.Executor(ctx).ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound(handle)
	}
	return nil
}
