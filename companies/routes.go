// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/handlers"
	"github.com/qolzam/jobly/internal/middleware/authrole"
)

// CompaniesHandlers holds all the handlers this router needs.
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes mounts /companies. Reads are public; writes are admin only.
func RegisterRoutes(router fiber.Router, h *CompaniesHandlers) {
	group := router.Group("/companies")

	group.Get("/", h.CompanyHandler.ListCompanies)
	group.Get("/:handle", h.CompanyHandler.GetCompany)

	admin := authrole.Admin()
	group.Post("/", admin, h.CompanyHandler.CreateCompany)
	group.Patch("/:handle", admin, h.CompanyHandler.UpdateCompany)
	group.Delete("/:handle", admin, h.CompanyHandler.DeleteCompany)
}
