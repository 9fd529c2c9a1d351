package services

import (
	"context"

	"github.com/qolzam/jobly/jobs/models"
)

// JobService defines the business operations on jobs
type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error)
	GetJob(ctx context.Context, id int) (*models.JobDetail, error)
	UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// CompanyInvalidator drops cached company details that embed a job list.
type CompanyInvalidator interface {
	InvalidateCompany(ctx context.Context, handle string)
}
