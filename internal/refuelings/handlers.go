package refuelings

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles refueling CRUD handlers.
type Handlers struct {
	Service *Service
}

// CreateRefueling POST /api/v1/refuelings/create-refueling
func (h *Handlers) CreateRefueling(c *fiber.Ctx) error {
	var in CreateRefuelingInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	record, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrAssetRefRequired, ErrLitersRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrVehicleNotFound, ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Refueling registered successfully", record, nil)
}

// GetVehicleRefuelings GET /api/v1/refuelings/vehicle/:id
func (h *Handlers) GetVehicleRefuelings(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	records, err := h.Service.ListByVehicle(c.Context(), id)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Refuelings retrieved successfully", records, nil)
}

// GetUnitRefuelings GET /api/v1/refuelings/unit/:id
func (h *Handlers) GetUnitRefuelings(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	records, err := h.Service.ListByUnit(c.Context(), id)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Refuelings retrieved successfully", records, nil)
}

// UpdateRefueling PATCH /api/v1/refuelings/update-refueling/:id
func (h *Handlers) UpdateRefueling(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid refueling ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateRefuelingInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	record, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrRefuelingNotFound:
			return response.NotFound(c, err.Error())
		case ErrLitersRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refueling updated successfully", record, nil)
}

// DeleteRefueling DELETE /api/v1/refuelings/delete-refueling/:id
func (h *Handlers) DeleteRefueling(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid refueling ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrRefuelingNotFound:
			return response.NotFound(c, err.Error())
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refueling deleted successfully", nil, nil)
}
