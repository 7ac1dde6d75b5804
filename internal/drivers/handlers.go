package drivers

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles driver registry handlers.
type Handlers struct {
	Service *Service
}

// CreateDriver POST /api/v1/drivers/create-driver
func (h *Handlers) CreateDriver(c *fiber.Ctx) error {
	var in CreateDriverInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	d, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrCNHTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Driver created successfully", d, nil)
}

// GetAllDrivers GET /api/v1/drivers/get-all-drivers
func (h *Handlers) GetAllDrivers(c *fiber.Ctx) error {
	drivers, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Drivers retrieved successfully", drivers, nil)
}

// GetDriver GET /api/v1/drivers/get-driver/:id
func (h *Handlers) GetDriver(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid driver ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	d, err := h.Service.Get(c.Context(), id)
	if err != nil {
		switch err {
		case ErrDriverNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Driver retrieved successfully", d, nil)
}

// UpdateDriver PATCH /api/v1/drivers/update-driver/:id
func (h *Handlers) UpdateDriver(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid driver ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateDriverInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	d, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrDriverNotFound:
			return response.NotFound(c, err.Error())
		case ErrNameRequired, ErrInvalidStatus:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Driver updated successfully", d, nil)
}

// DeleteDriver DELETE /api/v1/drivers/delete-driver/:id
func (h *Handlers) DeleteDriver(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid driver ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrDriverNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Driver deleted successfully", nil, nil)
}
