package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// RepairHandler handles HTTP requests for workshop operations.
type RepairHandler struct {
	service ports.RepairService
}

func NewRepairHandler(service ports.RepairService) *RepairHandler {
	return &RepairHandler{service: service}
}

type createRepairRequest struct {
	VehicleID     string  `json:"vehicle_id"     validate:"required"`
	Description   string  `json:"description"    validate:"required"`
	EstimatedCost float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
}

type updateRepairStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=em_andamento concluido"`
}

type repairResponse struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleModel  string    `json:"vehicle_model"`
	Description   string    `json:"description"`
	EstimatedCost float64   `json:"estimated_cost"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toRepairResponse(r *domain.Repair) repairResponse {
	return repairResponse{
		ID:            r.ID,
		VehicleID:     r.VehicleID,
		VehicleModel:  r.VehicleModel,
		Description:   r.Description,
		EstimatedCost: r.EstimatedCost,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

// Create handles POST /reparos.
//
// @Summary      Open a repair order
// @Tags         repairs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRepairRequest  true  "Repair details"
// @Success      201   {object}  repairResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reparos [post]
func (h *RepairHandler) Create(c echo.Context) error {
	var req createRepairRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	repair, err := h.service.CreateRepair(c.Request().Context(), ports.CreateRepairInput{
		VehicleID:     req.VehicleID,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRepairResponse(repair))
}

// List handles GET /reparos.
//
// @Summary      List repair orders
// @Tags         repairs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  repairResponse
// @Router       /reparos [get]
func (h *RepairHandler) List(c echo.Context) error {
	repairs, err := h.service.ListRepairs(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]repairResponse, len(repairs))
	for i, r := range repairs {
		out[i] = toRepairResponse(r)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PATCH /reparos/:id/status.
//
// @Summary      Update the status of a repair order
// @Tags         repairs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Repair id"
// @Param        body  body      updateRepairStatusRequest  true  "New status"
// @Success      200   {object}  repairResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reparos/{id}/status [patch]
func (h *RepairHandler) UpdateStatus(c echo.Context) error {
	var req updateRepairStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	repair, err := h.service.UpdateRepairStatus(c.Request().Context(), c.Param("id"), domain.RepairStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRepairResponse(repair))
}
