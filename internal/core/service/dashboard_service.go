package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// SummaryCache abstracts the dashboard cache (Redis). A miss is
// reported as (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context) (*ports.DashboardSummary, error)
	Set(ctx context.Context, summary *ports.DashboardSummary) error
}

// DashboardService aggregates inventory, sales and repair figures into
// the /dashboard/resumo view.
type DashboardService struct {
	vehicleRepo ports.VehicleRepository
	saleRepo    ports.SaleRepository
	repairRepo  ports.RepairRepository
	cache       SummaryCache
	logger      zerolog.Logger
}

func NewDashboardService(vehicleRepo ports.VehicleRepository, saleRepo ports.SaleRepository, repairRepo ports.RepairRepository, cache SummaryCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		vehicleRepo: vehicleRepo,
		saleRepo:    saleRepo,
		repairRepo:  repairRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("summary cache read failed, computing")
	} else if cached != nil {
		return cached, nil
	}

	byStatus, err := s.vehicleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	salesTotal, salesCount, err := s.saleRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	repairsCost, inProgress, completed, err := s.repairRepo.CostSummary(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.DashboardSummary{
		VehiclesInStock:   byStatus[domain.StatusInStock],
		VehiclesSold:      byStatus[domain.StatusSold],
		VehiclesInRepair:  byStatus[domain.StatusInRepair],
		SalesCount:        salesCount,
		SalesTotal:        salesTotal,
		RepairsInProgress: inProgress,
		RepairsCompleted:  completed,
		RepairsTotalCost:  repairsCost,
	}

	if err := s.cache.Set(ctx, summary); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache summary")
	}
	return summary, nil
}
