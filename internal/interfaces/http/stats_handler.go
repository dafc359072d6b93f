package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-simple/internal/application/dto"
	"github.com/jhoicas/inventario-simple/internal/application/usecase"
)

// StatsHandler maneja los endpoints de estadísticas del inventario.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del inventario
// @Description  Valor total (suma de price * quantity), cantidad total y número de productos.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetStats())
}

// DownloadReport godoc
// @Summary      Reporte de estadísticas en PDF
// @Tags         stats
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/report [get]
func (h *StatsHandler) DownloadReport(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.GenerateReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
