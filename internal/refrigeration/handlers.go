package refrigeration

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles refrigeration unit handlers.
type Handlers struct {
	Service *Service
}

// CreateUnit POST /api/v1/refrigeration/create-unit
func (h *Handlers) CreateUnit(c *fiber.Ctx) error {
	var in CreateUnitInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrIdentifierMissing:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrIdentifierTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Refrigeration unit created successfully", unit, nil)
}

// GetAllUnits GET /api/v1/refrigeration/get-all-units?status=
func (h *Handlers) GetAllUnits(c *fiber.Ctx) error {
	units, err := h.Service.List(c.Context(), c.Query("status"))
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Refrigeration units fetched successfully", units, nil)
}

// GetUnit GET /api/v1/refrigeration/get-unit/:id
func (h *Handlers) GetUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrUnitNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Refrigeration unit fetched successfully", unit, nil)
}

// UpdateUnit PUT /api/v1/refrigeration/update-unit/:id
func (h *Handlers) UpdateUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateUnitInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		if err == ErrUnitNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Refrigeration unit updated successfully", unit, nil)
}

type linkVehicleRequest struct {
	VehicleID *string `json:"vehicle_id"`
}

// LinkVehicle PATCH /api/v1/refrigeration/link-vehicle/:id
// Body {"vehicle_id": "<uuid>"} mounts; {"vehicle_id": null} unmounts.
func (h *Handlers) LinkVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var req linkVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	var vehicleID *uuid.UUID
	if req.VehicleID != nil && *req.VehicleID != "" {
		parsed, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
		}
		vehicleID = &parsed
	}

	unit, err := h.Service.LinkToVehicle(c.Context(), id, vehicleID)
	if err != nil {
		switch err {
		case ErrUnitNotFound, ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrUnitSold:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		case ErrVehicleHasUnit:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refrigeration unit link updated successfully", unit, nil)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus PATCH /api/v1/refrigeration/update-status/:id
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return response.Error(c, "status is required", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch err {
		case ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		case ErrInvalidStatus, ErrStatusViaSale:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrUnitLinked, ErrUnitSold:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refrigeration unit status updated successfully", unit, nil)
}

// GetConsumption GET /api/v1/refrigeration/consumption/:id
func (h *Handlers) GetConsumption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	stats, err := h.Service.Stats(c.Context(), id)
	if err != nil {
		if err == ErrUnitNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Unit consumption fetched successfully", stats, nil)
}
