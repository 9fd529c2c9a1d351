// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/jobs/models"
)

// JobRepository defines the database operations on jobs.
type JobRepository interface {
	// Create inserts a job; an unknown company is a not-found error.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// FindAll lists jobs matching filter with their company names, ordered by title.
	FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error)

	Get(ctx context.Context, id int) (*models.JobDetail, error)

	Update(ctx context.Context, id int, updates query.FieldUpdates) (*models.Job, error)

	// Remove deletes a job and returns the handle of the company it belonged to.
	Remove(ctx context.Context, id int) (string, error)
}
