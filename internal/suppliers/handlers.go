package suppliers

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles supplier registry handlers.
type Handlers struct {
	Service *Service
}

// CreateSupplier POST /api/v1/suppliers/create-supplier
func (h *Handlers) CreateSupplier(c *fiber.Ctx) error {
	var in CreateSupplierInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	sup, err := h.Service.Create(c.Context(), in)
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
	return response.SuccessCreated(c, "Supplier created successfully", sup, nil)
}

// GetAllSuppliers GET /api/v1/suppliers/get-all-suppliers?fuel_only=true
func (h *Handlers) GetAllSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.Service.List(c.Context(), c.QueryBool("fuel_only", false))
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Suppliers retrieved successfully", suppliers, nil)
}

// GetSupplier GET /api/v1/suppliers/get-supplier/:id
func (h *Handlers) GetSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid supplier ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	sup, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrSupplierNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Supplier retrieved successfully", sup, nil)
}

// UpdateSupplier PATCH /api/v1/suppliers/update-supplier/:id
func (h *Handlers) UpdateSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid supplier ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateSupplierInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	sup, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrSupplierNotFound:
			return response.NotFound(c, err.Error())
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Supplier updated successfully", sup, nil)
}

// DeleteSupplier DELETE /api/v1/suppliers/delete-supplier/:id
func (h *Handlers) DeleteSupplier(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid supplier ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrSupplierNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Supplier deleted successfully", nil, nil)
}
