package sales

import (
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles sale lifecycle handlers.
type Handlers struct {
	Service *Service
}

// SellVehicle POST /api/v1/sales/sell-vehicle/:id
func (h *Handlers) SellVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in SaleInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.SellVehicle(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrBuyerRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrAlreadySold:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle sold successfully", vehicle, nil)
}

// ReverseSaleVehicle POST /api/v1/sales/reverse-sale-vehicle/:id
func (h *Handlers) ReverseSaleVehicle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid vehicle ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	vehicle, err := h.Service.ReverseSaleVehicle(c.Context(), id)
	if err != nil {
		switch err {
		case ErrVehicleNotFound:
			return response.NotFound(c, err.Error())
		case ErrNotSold, ErrNoPreviousStatus:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle sale reversed successfully", vehicle, nil)
}

// SellUnit POST /api/v1/sales/sell-unit/:id
func (h *Handlers) SellUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	var in SaleInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.SellUnit(c.Context(), id, in)
	if err != nil {
		switch err {
		case ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		case ErrBuyerRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrAlreadySold, ErrUnitLinked:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refrigeration unit sold successfully", unit, nil)
}

// ReverseSaleUnit POST /api/v1/sales/reverse-sale-unit/:id
func (h *Handlers) ReverseSaleUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid unit ID format (must be a valid UUID)", fiber.StatusBadRequest, nil)
	}
	unit, err := h.Service.ReverseSaleUnit(c.Context(), id)
	if err != nil {
		switch err {
		case ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		case ErrNotSold, ErrNoPreviousStatus:
			return response.Error(c, err.Error(), fiber.StatusUnprocessableEntity, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refrigeration unit sale reversed successfully", unit, nil)
}
