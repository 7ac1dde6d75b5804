package companies

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles company registry handlers.
type Handlers struct {
	Service *Service
}

// CreateCompany POST /api/v1/companies/create-company
func (h *Handlers) CreateCompany(c *fiber.Ctx) error {
	var in CreateCompanyInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	co, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrCNPJTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Company created successfully", co, nil)
}

// GetAllCompanies GET /api/v1/companies/get-all-companies
func (h *Handlers) GetAllCompanies(c *fiber.Ctx) error {
	companies, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Companies retrieved successfully", companies, nil)
}

// GetCompany GET /api/v1/companies/get-company/:id
func (h *Handlers) GetCompany(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid company ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	co, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrCompanyNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Company retrieved successfully", co, nil)
}

// UpdateCompany PATCH /api/v1/companies/update-company/:id
func (h *Handlers) UpdateCompany(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid company ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateCompanyInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	co, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrCompanyNotFound:
			return response.NotFound(c, err.Error())
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Company updated successfully", co, nil)
}

// DeleteCompany DELETE /api/v1/companies/delete-company/:id
func (h *Handlers) DeleteCompany(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid company ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrCompanyNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Company deleted successfully", nil, nil)
}
