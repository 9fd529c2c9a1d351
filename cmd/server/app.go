package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/qolzam/jobly/auth"
	authHandlers "github.com/qolzam/jobly/auth/handlers"
	"github.com/qolzam/jobly/companies"
	companyHandlers "github.com/qolzam/jobly/companies/handlers"
	companyRepository "github.com/qolzam/jobly/companies/repository"
	companyServices "github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/requestid"
	"github.com/qolzam/jobly/internal/platform"
	"github.com/qolzam/jobly/internal/server"
	"github.com/qolzam/jobly/jobs"
	jobHandlers "github.com/qolzam/jobly/jobs/handlers"
	jobRepository "github.com/qolzam/jobly/jobs/repository"
	jobServices "github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/users"
	userHandlers "github.com/qolzam/jobly/users/handlers"
	userRepository "github.com/qolzam/jobly/users/repository"
	userServices "github.com/qolzam/jobly/users/services"
)

// newApp wires every domain onto one fiber app.
func newApp(base *platform.BaseService) *fiber.App {
	cfg := base.Config

	app := fiber.New(fiber.Config{
		AppName:      "jobly",
		ErrorHandler: apierrors.Handler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(cfg.Server.WebDomain),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + requestid.HeaderRequestID,
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))
	app.Use(authjwt.New(authjwt.Config{Verifier: base.Verifier}))

	app.Get("/health", server.Health(base))

	companyService := companyServices.NewCompanyService(companyRepository.NewPostgresRepository(base.DB), base.Cache)
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	})

	jobService := jobServices.NewJobService(jobRepository.NewPostgresRepository(base.DB), companyService)
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	})

	userService := userServices.NewUserService(
		userRepository.NewPostgresRepository(base.DB, cfg.Security.BcryptWorkFactor),
		base.Issuer,
		userServices.ServiceConfig{PasswordMinScore: cfg.Security.PasswordMinScore},
	)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService),
	})
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: authHandlers.NewAuthHandler(userService),
	}, cfg.RateLimits)

	return app
}

func allowOrigins(webDomain string) string {
	if strings.TrimSpace(webDomain) == "" {
		return "*"
	}
	return webDomain
}
