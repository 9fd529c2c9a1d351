package models

import "github.com/qolzam/jobly/internal/database/query"

// Company is a row of the companies table.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CompanyJob is the job summary embedded in a company detail.
type CompanyJob struct {
	ID     int      `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *int     `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}

// CompanyDetail is a company with its open jobs.
type CompanyDetail struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

// Columns maps request field names to company columns.
var Columns = query.Columns{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25"`
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description" validate:"required"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// Company converts the request into a row.
func (r *CreateCompanyRequest) Company() *Company {
	return &Company{
		Handle:       r.Handle,
		Name:         r.Name,
		Description:  r.Description,
		NumEmployees: r.NumEmployees,
		LogoURL:      r.LogoURL,
	}
}

// UpdateCompanyRequest is the body of PATCH /companies/:handle. The handle
// itself cannot change.
type UpdateCompanyRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// Updates lists the supplied fields in declaration order.
func (r *UpdateCompanyRequest) Updates() query.FieldUpdates {
	var updates query.FieldUpdates
	if r.Name != nil {
		updates = updates.Add("name", *r.Name)
	}
	if r.Description != nil {
		updates = updates.Add("description", *r.Description)
	}
	if r.NumEmployees != nil {
		updates = updates.Add("numEmployees", *r.NumEmployees)
	}
	if r.LogoURL != nil {
		updates = updates.Add("logoUrl", *r.LogoURL)
	}
	return updates
}

// CompanyFilter holds the GET /companies query parameters.
type CompanyFilter struct {
	NameLike     *string `query:"nameLike" json:"nameLike"`
	MinEmployees *int    `query:"minEmployees" json:"minEmployees" validate:"omitempty,gte=0"`
	MaxEmployees *int    `query:"maxEmployees" json:"maxEmployees" validate:"omitempty,gte=0"`
}
