package services

import (
	"context"
	"fmt"

	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/repository"
)

const msgWeakPassword = "Password is too weak"

// ServiceConfig holds the password policy.
type ServiceConfig struct {
	// PasswordMinScore is the minimum zxcvbn score for new passwords; 0 disables it.
	PasswordMinScore int
}

type userService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
	config ServiceConfig
}

// NewUserService creates a user service
func NewUserService(repo repository.UserRepository, tokens TokenIssuer, config ServiceConfig) UserService {
	return &userService{repo: repo, tokens: tokens, config: config}
}

func (s *userService) checkStrength(password string, inputs ...string) error {
	if !utils.IsStrongPassword(password, s.config.PasswordMinScore, inputs...) {
		return apierrors.NewBadRequestError(msgWeakPassword)
	}
	return nil
}

func (s *userService) issue(user *models.User) (string, error) {
	token, err := s.tokens.Create(user.Identity())
	if err != nil {
		return "", fmt.Errorf("failed to create token for %s: %w", user.Username, err)
	}
	return token, nil
}

func (s *userService) Authenticate(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.repo.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return "", err
	}
	return s.issue(user)
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if err := s.checkStrength(req.Password, req.Username, req.FirstName, req.LastName, req.Email); err != nil {
		return "", err
	}

	user, err := s.repo.Register(ctx, req.NewUser())
	if err != nil {
		return "", err
	}
	log.InfoWithContext(ctx, "User %s registered", user.Username)
	return s.issue(user)
}

func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error) {
	if err := s.checkStrength(req.Password, req.Username, req.FirstName, req.LastName, req.Email); err != nil {
		return nil, "", err
	}

	user, err := s.repo.Register(ctx, req.NewUser())
	if err != nil {
		return nil, "", err
	}
	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	log.InfoWithContext(ctx, "User %s created (admin=%t)", user.Username, user.IsAdmin)
	return user, token, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	return s.repo.Get(ctx, username)
}

func (s *userService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Password != nil {
		if err := s.checkStrength(*req.Password, username); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, username, req.Updates())
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Remove(ctx, username); err != nil {
		return err
	}
	log.InfoWithContext(ctx, "User %s deleted", username)
	return nil
}

func (s *userService) ApplyToJob(ctx context.Context, username string, jobID int) error {
	return s.repo.ApplyToJob(ctx, username, jobID)
}
