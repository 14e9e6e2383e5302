package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/ports"
)

// DashboardHandler serves the aggregate dealership summary.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /dashboard/resumo.
//
// @Summary      Dealership summary figures
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Router       /dashboard/resumo [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
