package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// ProposalHandler handles HTTP requests for purchase proposals.
type ProposalHandler struct {
	service ports.ProposalService
}

func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

type createProposalRequest struct {
	VehicleID string  `json:"vehicle_id" validate:"required"`
	Value     float64 `json:"value"      validate:"required,gt=0"`
}

type decideProposalRequest struct {
	Status string `json:"status" validate:"required,oneof=aprovada recusada"`
}

type proposalResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	VehicleLabel string    `json:"vehicle_label"`
	Value        float64   `json:"value"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}

func toProposalResponse(p *domain.Proposal) proposalResponse {
	return proposalResponse{
		ID:           p.ID,
		VehicleID:    p.VehicleID,
		VehicleLabel: p.VehicleLabel,
		Value:        p.Value,
		Status:       string(p.Status),
		Date:         p.Date.UTC(),
	}
}

// Create handles POST /propostas.
//
// @Summary      Submit a purchase proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProposalRequest  true  "Proposal details"
// @Success      201   {object}  proposalResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /propostas [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	_, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	proposal, err := h.service.CreateProposal(c.Request().Context(), ports.CreateProposalInput{
		ClientID:  userID,
		VehicleID: req.VehicleID,
		Value:     req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProposalResponse(proposal))
}

// List handles GET /propostas. Clients see their own proposals, dealers
// see all of them.
//
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  proposalResponse
// @Router       /propostas [get]
func (h *ProposalHandler) List(c echo.Context) error {
	role, userID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	proposals, err := h.service.ListProposals(c.Request().Context(), role, userID)
	if err != nil {
		return err
	}

	out := make([]proposalResponse, len(proposals))
	for i, p := range proposals {
		out[i] = toProposalResponse(p)
	}
	return c.JSON(http.StatusOK, out)
}

// Decide handles PATCH /propostas/:id/status (dealer only).
//
// @Summary      Approve or reject a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Proposal id"
// @Param        body  body      decideProposalRequest  true  "Decision"
// @Success      200   {object}  proposalResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /propostas/{id}/status [patch]
func (h *ProposalHandler) Decide(c echo.Context) error {
	var req decideProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	proposal, err := h.service.DecideProposal(c.Request().Context(), c.Param("id"), domain.ProposalStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProposalResponse(proposal))
}
