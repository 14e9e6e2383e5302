package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for scheduling.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=test_drive visita"`
	Date      string `json:"date"       validate:"required"`
	Time      string `json:"time"       validate:"required"`
	Location  string `json:"location"   validate:"required"`
}

type appointmentResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	VehicleLabel string    `json:"vehicle_label"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID,
		VehicleID:    a.VehicleID,
		VehicleLabel: a.VehicleLabel,
		Type:         string(a.Type),
		Date:         a.Date.UTC(),
		Time:         a.Time,
		Location:     a.Location,
		Status:       string(a.Status),
	}
}

// Create handles POST /agendamentos.
//
// @Summary      Schedule a test drive or visit
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /agendamentos [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
	}

	appointment, err := h.service.CreateAppointment(c.Request().Context(), ports.CreateAppointmentInput{
		ClientID:  userID,
		VehicleID: req.VehicleID,
		Type:      domain.AppointmentType(req.Type),
		Date:      date,
		Time:      req.Time,
		Location:  req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAppointmentResponse(appointment))
}

// List handles GET /agendamentos. Clients see their own bookings,
// dealers see all of them.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  appointmentResponse
// @Router       /agendamentos [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.ListAppointments(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}

	out := make([]appointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = toAppointmentResponse(a)
	}
	return c.JSON(http.StatusOK, out)
}

// Cancel handles DELETE /agendamentos/:id.
//
// @Summary      Cancel a scheduled appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /agendamentos/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}
	// Dealers may cancel any booking.
	if role == domain.RoleDealer {
		userID = ""
	}

	appointment, err := h.service.CancelAppointment(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}
