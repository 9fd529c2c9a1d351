package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/server"
)

// CompanyHandler handles the /companies endpoints
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	company, err := h.companyService.CreateCompany(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	var filter models.CompanyFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return err
	}

	companies, err := h.companyService.ListCompanies(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles GET /companies/:handle
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.companyService.GetCompany(c.UserContext(), c.Params("handle"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": company})
}

// UpdateCompany handles PATCH /companies/:handle
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var req models.UpdateCompanyRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	company, err := h.companyService.UpdateCompany(c.UserContext(), c.Params("handle"), &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": company})
}

// DeleteCompany handles DELETE /companies/:handle
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.DeleteCompany(c.UserContext(), handle); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": handle})
}
