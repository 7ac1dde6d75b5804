package vehicles

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles vehicle handlers.
type Handlers struct {
	Service *Service
}

// CreateVehicle POST /api/v1/vehicles/create-vehicle
func (h *Handlers) CreateVehicle(c *fiber.Ctx) error {
	var in CreateVehicleInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.Create(c.Context(), in)
	if err != nil {
		switch err {
		case ErrPlateRequired, ErrInvalidVehicleType, ErrInvalidAxles:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrPlateTaken:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "Vehicle created successfully", vehicle, nil)
}

// GetAllVehicles GET /api/v1/vehicles/get-all-vehicles?status=&category=
func (h *Handlers) GetAllVehicles(c *fiber.Ctx) error {
	vehicles, err := h.Service.List(c.Context(), c.Query("status"), c.Query("category"))
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vehicles fetched successfully", vehicles, nil)
}

// GetVehicle GET /api/v1/vehicles/get-vehicle/:id
func (h *Handlers) GetVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrVehicleNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vehicle fetched successfully", vehicle, nil)
}

// UpdateVehicle PUT /api/v1/vehicles/update-vehicle/:id
func (h *Handlers) UpdateVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in UpdateVehicleInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrTypeImmutable:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle updated successfully", vehicle, nil)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus PATCH /api/v1/vehicles/update-status/:id
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return response.Error(c, "status is required", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrInvalidStatus, ErrStatusViaSale:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrVehicleSold:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle status updated successfully", vehicle, nil)
}

type linkTrailerRequest struct {
	TractionVehicleID string `json:"traction_vehicle_id"`
	TrailerVehicleID  string `json:"trailer_vehicle_id"`
}

// LinkTrailer POST /api/v1/vehicles/link-trailer
func (h *Handlers) LinkTrailer(c *fiber.Ctx) error {
	var req linkTrailerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	tractionID, err := uuid.Parse(req.TractionVehicleID)
	if err != nil {
		return response.Error(c, "Invalid traction vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	trailerID, err := uuid.Parse(req.TrailerVehicleID)
	if err != nil {
		return response.Error(c, "Invalid trailer vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.LinkTrailer(c.Context(), tractionID, trailerID)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrSelfLink, ErrNotTraction, ErrNotTrailer, ErrTrailerNotActive:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		case ErrTrailerAlreadyLinked:
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		case ErrVehicleSold:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Trailer linked successfully", vehicle, nil)
}

type unlinkTrailerRequest struct {
	TractionVehicleID string `json:"traction_vehicle_id"`
	Plate             string `json:"plate"`
}

// UnlinkTrailer POST /api/v1/vehicles/unlink-trailer
func (h *Handlers) UnlinkTrailer(c *fiber.Ctx) error {
	var req unlinkTrailerRequest
	if err := c.BodyParser(&req); err != nil || req.Plate == "" {
		return response.Error(c, "traction_vehicle_id and plate are required", fiber.StatusBadRequest, nil)
	}
	tractionID, err := uuid.Parse(req.TractionVehicleID)
	if err != nil {
		return response.Error(c, "Invalid traction vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.UnlinkTrailer(c.Context(), tractionID, req.Plate)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrTrailerNotLinked:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Trailer unlinked successfully", vehicle, nil)
}

// GetComposition GET /api/v1/vehicles/composition/:id
func (h *Handlers) GetComposition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	view, err := h.Service.Composition(c.Context(), id)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrNotTraction:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Composition fetched successfully", view, nil)
}

// GetConsumption GET /api/v1/vehicles/consumption/:id
func (h *Handlers) GetConsumption(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	stats, err := h.Service.Stats(c.Context(), id)
	if err != nil {
		if err == ErrVehicleNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Vehicle consumption fetched successfully", stats, nil)
}
