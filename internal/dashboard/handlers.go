package dashboard

import (
	"frota-backend/internal/consumption"
	"frota-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles dashboard handlers.
type Handlers struct {
	Service *Service
}

// GetSummary GET /api/v1/dashboard/summary
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	summary, err := h.Service.Summary(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Dashboard summary retrieved successfully", summary, nil)
}

// GetVehicleRanking GET /api/v1/dashboard/ranking/vehicles?direction=best&top=5
func (h *Handlers) GetVehicleRanking(c *fiber.Ctx) error {
	dir := consumption.Direction(c.Query("direction", string(consumption.Best)))
	topN := c.QueryInt("top", 5)
	ranking, err := h.Service.RankVehicles(c.Context(), dir, topN)
	if err != nil {
		switch err {
		case ErrInvalidDirection:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Vehicle ranking retrieved successfully", ranking, nil)
}

// GetUnitRanking GET /api/v1/dashboard/ranking/units?direction=best&top=5
func (h *Handlers) GetUnitRanking(c *fiber.Ctx) error {
	dir := consumption.Direction(c.Query("direction", string(consumption.Best)))
	topN := c.QueryInt("top", 5)
	ranking, err := h.Service.RankUnits(c.Context(), dir, topN)
	if err != nil {
		switch err {
		case ErrInvalidDirection:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.Success(c, "Refrigeration unit ranking retrieved successfully", ranking, nil)
}
