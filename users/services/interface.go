package services

import (
	"context"

	"github.com/qolzam/jobly/internal/types"
	"github.com/qolzam/jobly/users/models"
)

// UserService defines the account and application operations
type UserService interface {
	// Authenticate checks credentials and returns a signed token.
	Authenticate(ctx context.Context, req *models.LoginRequest) (string, error)
	// Register creates a non-admin account and returns a signed token.
	Register(ctx context.Context, req *models.RegisterRequest) (string, error)
	// CreateUser lets an admin create any account; the new user's token is returned with it.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
	ApplyToJob(ctx context.Context, username string, jobID int) error
}

// TokenIssuer signs tokens for an identity.
type TokenIssuer interface {
	Create(user types.UserContext) (string, error)
}
