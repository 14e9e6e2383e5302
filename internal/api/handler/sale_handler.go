package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// SaleHandler handles HTTP requests for sale operations.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type createSaleRequest struct {
	VehicleID     string  `json:"vehicle_id"     validate:"required"`
	BuyerName     string  `json:"buyer_name"     validate:"required"`
	BuyerEmail    string  `json:"buyer_email"    validate:"required,email"`
	SalePrice     float64 `json:"sale_price"     validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

type saleResponse struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleModel  string    `json:"vehicle_model"`
	BuyerName     string    `json:"buyer_name"`
	BuyerEmail    string    `json:"buyer_email"`
	SalePrice     float64   `json:"sale_price"`
	PaymentMethod string    `json:"payment_method"`
	Date          time.Time `json:"date"`
}

func toSaleResponse(s *domain.Sale) saleResponse {
	return saleResponse{
		ID:            s.ID,
		VehicleID:     s.VehicleID,
		VehicleModel:  s.VehicleModel,
		BuyerName:     s.BuyerName,
		BuyerEmail:    s.BuyerEmail,
		SalePrice:     s.SalePrice,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date.UTC(),
	}
}

// Create handles POST /vendas.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleRequest  true  "Sale details"
// @Success      201   {object}  saleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /vendas [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sale, err := h.service.CreateSale(c.Request().Context(), ports.CreateSaleInput{
		VehicleID:     req.VehicleID,
		BuyerName:     req.BuyerName,
		BuyerEmail:    req.BuyerEmail,
		SalePrice:     req.SalePrice,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSaleResponse(sale))
}

// List handles GET /vendas.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  saleResponse
// @Router       /vendas [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.ListSales(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]saleResponse, len(sales))
	for i, s := range sales {
		out[i] = toSaleResponse(s)
	}
	return c.JSON(http.StatusOK, out)
}
