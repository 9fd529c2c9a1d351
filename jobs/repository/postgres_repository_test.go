package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobRowColumns = []string{"id", "title", "salary", "equity", "company_handle"}

func TestCreate(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	salary := 100
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO jobs (title,salary,equity,company_handle) VALUES ($1,$2,$3,$4) RETURNING id, title, salary, equity, company_handle")).
		WithArgs("new", 100, nil, "c1").
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(7, "new", 100, nil, "c1"))

	job, err := repo.Create(context.Background(), &models.Job{Title: "new", Salary: &salary, CompanyHandle: "c1"})
	require.NoError(t, err)
	assert.Equal(t, 7, job.ID)
	assert.Nil(t, job.Equity)
}

func TestCreate_UnknownCompany(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery("INSERT INTO jobs").WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &models.Job{Title: "new", CompanyHandle: "nope"})
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
	assert.Equal(t, "No company: nope", err.Error())
}

func TestFindAll_Filtered(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	title, minSalary, hasEquity := "1", 10000, true
	mock.ExpectQuery(regexp.QuoteMeta("WHERE title ILIKE $1 AND salary >= $2 AND equity > $3 ORDER BY title")).
		WithArgs("%1%", 10000, 0).
		WillReturnRows(sqlmock.NewRows(append(jobRowColumns, "company_name")).
			AddRow(1, "Job1", 20000, "0.1", "c1", "C1"))

	jobs, err := repo.FindAll(context.Background(), models.JobFilter{Title: &title, MinSalary: &minSalary, HasEquity: &hasEquity})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "C1", jobs[0].CompanyName)
	assert.InDelta(t, 0.1, *jobs[0].Equity, 1e-9)
}

func TestFindAll_HasEquityFalse(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	hasEquity := false
	mock.ExpectQuery(regexp.QuoteMeta("ON c.handle = j.company_handle  ORDER BY title")).
		WithArgs().
		WillReturnRows(sqlmock.NewRows(append(jobRowColumns, "company_name")))

	jobs, err := repo.FindAll(context.Background(), models.JobFilter{HasEquity: &hasEquity})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestGet(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery("FROM jobs WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(1, "Job1", 100, "0.1", "c1"))
	mock.ExpectQuery("FROM companies WHERE handle = \\$1").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "num_employees", "logo_url"}).
			AddRow("c1", "C1", "Desc1", 1, nil))

	job, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Job1", job.Title)
	assert.Equal(t, "C1", job.Company.Name)
}

func TestGet_NotFound(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery("FROM jobs WHERE id").WithArgs(0).WillReturnRows(sqlmock.NewRows(jobRowColumns))

	_, err := repo.Get(context.Background(), 0)
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
	assert.Equal(t, "No job: 0", err.Error())
}

func TestUpdate(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE jobs SET "title"=$1, "salary"=$2 WHERE id = $3 RETURNING`)).
		WithArgs("New", 500, 1).
		WillReturnRows(sqlmock.NewRows(jobRowColumns).AddRow(1, "New", 500, nil, "c1"))

	job, err := repo.Update(context.Background(), 1, query.FieldUpdates{}.Add("title", "New").Add("salary", 500))
	require.NoError(t, err)
	assert.Equal(t, "New", job.Title)
	assert.Equal(t, "c1", job.CompanyHandle)
}

func TestRemove(t *testing.T) {
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM jobs WHERE id = $1 RETURNING company_handle")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"company_handle"}).AddRow("c1"))
	mock.ExpectQuery("DELETE FROM jobs").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"company_handle"}))

	handle, err := repo.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "c1", handle)

	_, err = repo.Remove(context.Background(), 99)
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}
