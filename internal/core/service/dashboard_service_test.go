package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

type stubSummaryCache struct {
	cached *ports.DashboardSummary
	getErr error
	setErr error
	stored []*ports.DashboardSummary
}

func (c *stubSummaryCache) Get(_ context.Context) (*ports.DashboardSummary, error) {
	return c.cached, c.getErr
}

func (c *stubSummaryCache) Set(_ context.Context, s *ports.DashboardSummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = append(c.stored, s)
	return nil
}

func TestDashboardService_ServesFromCache(t *testing.T) {
	cached := &ports.DashboardSummary{VehiclesInStock: 7, SalesCount: 3}
	cache := &stubSummaryCache{cached: cached}
	vehicles := newStubVehicleRepo()
	vehicles.counts = map[domain.VehicleStatus]int64{domain.StatusInStock: 99}

	svc := NewDashboardService(vehicles, &stubSaleRepo{}, newStubRepairRepo(), cache, zerolog.Nop())
	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != cached {
		t.Errorf("expected cached summary, got: %+v", got)
	}
	if len(cache.stored) != 0 {
		t.Errorf("cache hit must not write back")
	}
}

func TestDashboardService_AggregatesOnMiss(t *testing.T) {
	cache := &stubSummaryCache{}
	vehicles := newStubVehicleRepo()
	vehicles.counts = map[domain.VehicleStatus]int64{
		domain.StatusInStock:  5,
		domain.StatusSold:     2,
		domain.StatusInRepair: 1,
	}
	sales := &stubSaleRepo{revenue: 250000, count: 2}
	repairs := newStubRepairRepo()
	repairs.total = 4200
	repairs.inProg = 1
	repairs.completed = 4

	svc := NewDashboardService(vehicles, sales, repairs, cache, zerolog.Nop())
	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := ports.DashboardSummary{
		VehiclesInStock:   5,
		VehiclesSold:      2,
		VehiclesInRepair:  1,
		SalesCount:        2,
		SalesTotal:        250000,
		RepairsInProgress: 1,
		RepairsCompleted:  4,
		RepairsTotalCost:  4200,
	}
	if *got != want {
		t.Errorf("summary mismatch:\n got %+v\nwant %+v", *got, want)
	}
	if len(cache.stored) != 1 {
		t.Errorf("expected summary cached after aggregation")
	}
}

func TestDashboardService_CacheFailureFallsThrough(t *testing.T) {
	cache := &stubSummaryCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	vehicles := newStubVehicleRepo()
	vehicles.counts = map[domain.VehicleStatus]int64{domain.StatusInStock: 1}

	svc := NewDashboardService(vehicles, &stubSaleRepo{}, newStubRepairRepo(), cache, zerolog.Nop())
	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request, got: %v", err)
	}
	if got.VehiclesInStock != 1 {
		t.Errorf("expected aggregation despite cache failure, got: %+v", got)
	}
}
