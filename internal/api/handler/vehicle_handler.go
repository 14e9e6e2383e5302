package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/ports"
)

// VehicleHandler handles HTTP requests for inventory operations.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// Create handles POST /veiculos.
//
// @Summary      Add a vehicle to the inventory
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  vehicleResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /veiculos [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vehicle, err := h.service.CreateVehicle(c.Request().Context(), toCreateVehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVehicleResponse(vehicle))
}

// Get handles GET /veiculos/:id.
//
// @Summary      Get a vehicle by id
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vehicle id"
// @Success      200  {object}  vehicleResponse
// @Failure      404  {object}  errorResponse
// @Router       /veiculos/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	vehicle, err := h.service.GetVehicle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// List handles GET /veiculos with optional status, year and brand filters.
//
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (estoque|vendido|reparo)"
// @Param        year    query     int     false  "Filter by model year"
// @Param        brand   query     string  false  "Filter by brand"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listVehiclesResponse
// @Router       /veiculos [get]
func (h *VehicleHandler) List(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListVehicles(c.Request().Context(), ports.ListVehiclesFilter{
		Status: c.QueryParam("status"),
		Year:   year,
		Brand:  c.QueryParam("brand"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListVehiclesResponse(result))
}

// Update handles PUT /veiculos/:id.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Vehicle id"
// @Param        body  body      updateVehicleRequest  true  "Fields to update"
// @Success      200   {object}  vehicleResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /veiculos/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	vehicle, err := h.service.UpdateVehicle(c.Request().Context(), c.Param("id"), toUpdateVehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// Delete handles DELETE /veiculos/:id.
//
// @Summary      Remove a vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id  path  string  true  "Vehicle id"
// @Success      204  "vehicle removed"
// @Failure      404  {object}  errorResponse
// @Router       /veiculos/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
