package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/api/metrics"
	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// SaleService implements sale use cases. Recording a sale emits a
// "vendido" status event for the vehicle instead of mutating it inline,
// so all status changes flow through the same ordered pipeline.
type SaleService struct {
	saleRepo    ports.SaleRepository
	vehicleRepo ports.VehicleRepository
	events      ports.StatusEventPublisher
	logger      zerolog.Logger
}

func NewSaleService(saleRepo ports.SaleRepository, vehicleRepo ports.VehicleRepository, events ports.StatusEventPublisher, logger zerolog.Logger) *SaleService {
	return &SaleService{saleRepo: saleRepo, vehicleRepo: vehicleRepo, events: events, logger: logger}
}

func (s *SaleService) CreateSale(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Status.CanTransitionTo(domain.StatusSold) {
		return nil, domain.ErrVehicleUnavailable
	}

	now := time.Now().UTC()
	sale := &domain.Sale{
		VehicleID:     vehicle.ID,
		VehicleModel:  vehicle.Brand + " " + vehicle.Model,
		BuyerName:     input.BuyerName,
		BuyerEmail:    input.BuyerEmail,
		SalePrice:     input.SalePrice,
		PaymentMethod: input.PaymentMethod,
		Date:          now,
		CreatedAt:     now,
	}

	created, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", input.VehicleID).Msg("failed to record sale")
		return nil, err
	}

	s.events.Publish(ports.VehicleStatusEvent{
		VehicleID: vehicle.ID,
		Status:    string(domain.StatusSold),
		Timestamp: now,
		Source:    "sale",
	})

	metrics.SalesRecordedTotal.WithLabelValues(input.PaymentMethod).Inc()
	s.logger.Info().
		Str("sale_id", created.ID).
		Str("vehicle_id", vehicle.ID).
		Float64("sale_price", input.SalePrice).
		Msg("sale recorded")

	return created, nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	return s.saleRepo.List(ctx)
}
