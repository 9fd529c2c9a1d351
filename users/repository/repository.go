// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/users/models"
)

// UserRepository defines the database operations on users and applications.
type UserRepository interface {
	// Authenticate returns the user when password matches its stored hash.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// Register hashes the password and inserts the user; a taken username is a bad request.
	Register(ctx context.Context, user *models.NewUser) (*models.User, error)

	FindAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.UserDetail, error)

	// Update changes only the supplied fields, re-hashing a new password.
	Update(ctx context.Context, username string, updates query.FieldUpdates) (*models.User, error)

	Remove(ctx context.Context, username string) error

	// ApplyToJob records an application after checking the job and user exist.
	ApplyToJob(ctx context.Context, username string, jobID int) error
}
