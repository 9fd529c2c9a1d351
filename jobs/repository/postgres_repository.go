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
	companymodels "github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/jobs/models"
)

const jobColumns = "id, title, salary, equity, company_handle"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var jobFilter = query.NewFilter(
	query.Contains("title", "title", func(f models.JobFilter) *string { return f.Title }),
	query.AtLeast("minSalary", "salary", func(f models.JobFilter) *int { return f.MinSalary }),
	query.WhenTrue("hasEquity", "equity", ">", 0, func(f models.JobFilter) *bool { return f.HasEquity }),
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs
func NewPostgresRepository(client *postgres.Client) JobRepository {
	return &postgresRepository{client: client}
}

func notFound(id int) error {
	return apierrors.NewNotFoundError(fmt.Sprintf("No job: %d", id))
}

func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	stmt, args, err := psql.Insert("jobs").
		Columns("title", "salary", "equity", "company_handle").
		Values(job.Title, job.Salary, job.Equity, job.CompanyHandle).
		Suffix("RETURNING " + jobColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job insert: %w", err)
	}

	var created models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &created, stmt, args...); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, apierrors.NewNotFoundError(fmt.Sprintf("No company: %s", job.CompanyHandle))
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	where, err := jobFilter.Build(filter)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		FROM jobs j JOIN companies c ON c.handle = j.company_handle %s ORDER BY title`, where.Where())

	jobs := []models.JobListing{}
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &jobs, stmt, where.Values()...); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

func (r *postgresRepository) Get(ctx context.Context, id int) (*models.JobDetail, error) {
	executor := r.client.Executor(ctx)

	var job models.Job
	err := sqlx.GetContext(ctx, executor, &job, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var company companymodels.Company
	err = sqlx.GetContext(ctx, executor, &company,
		"SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1",
		job.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company of job %d: %w", id, err)
	}

	return &models.JobDetail{
		ID:      job.ID,
		Title:   job.Title,
		Salary:  job.Salary,
		Equity:  job.Equity,
		Company: company,
	}, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int, updates query.FieldUpdates) (*models.Job, error) {
	set, err := query.PartialUpdate(updates, models.Columns)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d RETURNING %s",
		set.Set(), set.NextPlaceholder(), jobColumns)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &job, stmt, set.Args(id)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &job, nil
}

func (r *postgresRepository) Remove(ctx context.Context, id int) (string, error) {
	stmt, args, err := psql.Delete("jobs").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING company_handle").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build job delete: %w", err)
	}

	var handle string
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &handle, stmt, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", notFound(id)
		}
		return "", fmt.Errorf("failed to delete job: %w", err)
	}
	return handle, nil
}
