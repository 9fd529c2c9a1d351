package models

import (
	companymodels "github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/query"
)

// Job is a row of the jobs table.
type Job struct {
	ID            int      `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Salary        *int     `json:"salary" db:"salary"`
	Equity        *float64 `json:"equity" db:"equity"`
	CompanyHandle string   `json:"companyHandle" db:"company_handle"`
}

// JobListing is a job as returned by GET /jobs.
type JobListing struct {
	Job
	CompanyName string `json:"companyName" db:"company_name"`
}

// JobDetail is a job with its company in place of the handle.
type JobDetail struct {
	ID      int                   `json:"id"`
	Title   string                `json:"title"`
	Salary  *int                  `json:"salary"`
	Equity  *float64              `json:"equity"`
	Company companymodels.Company `json:"company"`
}

// Columns maps request field names to job columns. Every updatable job field
// already matches its column name.
var Columns = query.Columns{}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,min=1"`
	Salary        *int     `json:"salary" validate:"omitempty,gte=0"`
	Equity        *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required,min=1,max=25"`
}

// Job converts the request into a row.
func (r *CreateJobRequest) Job() *Job {
	return &Job{
		Title:         r.Title,
		Salary:        r.Salary,
		Equity:        r.Equity,
		CompanyHandle: r.CompanyHandle,
	}
}

// UpdateJobRequest is the body of PATCH /jobs/:id. Neither the id nor the
// company can change, so companyHandle is an unknown field here.
type UpdateJobRequest struct {
	Title  *string  `json:"title" validate:"omitempty,min=1"`
	Salary *int     `json:"salary" validate:"omitempty,gte=0"`
	Equity *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
}

// Updates lists the supplied fields in declaration order.
func (r *UpdateJobRequest) Updates() query.FieldUpdates {
	var updates query.FieldUpdates
	if r.Title != nil {
		updates = updates.Add("title", *r.Title)
	}
	if r.Salary != nil {
		updates = updates.Add("salary", *r.Salary)
	}
	if r.Equity != nil {
		updates = updates.Add("equity", *r.Equity)
	}
	return updates
}

// JobFilter holds the GET /jobs query parameters.
type JobFilter struct {
	Title     *string `query:"title" json:"title"`
	MinSalary *int    `query:"minSalary" json:"minSalary" validate:"omitempty,gte=0"`
	HasEquity *bool   `query:"hasEquity" json:"hasEquity"`
}
