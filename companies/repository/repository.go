// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/internal/database/query"
)

// CompanyRepository defines the database operations on companies.
type CompanyRepository interface {
	// Create inserts a company; a taken handle is a bad request.
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// FindAll lists companies matching filter, ordered by name.
	FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)

	// Get returns a company and its jobs.
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)

	// Update changes only the supplied fields.
	Update(ctx context.Context, handle string, updates query.FieldUpdates) (*models.Company, error)

	// Remove deletes a company and, by cascade, its jobs.
	Remove(ctx context.Context, handle string) error
}
