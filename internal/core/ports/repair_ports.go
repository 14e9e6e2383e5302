package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// CreateRepairInput carries all data needed to open a repair order.
type CreateRepairInput struct {
	VehicleID     string
	Description   string
	EstimatedCost float64
}

// RepairRepository defines persistence operations for repair orders.
type RepairRepository interface {
	Create(ctx context.Context, r *domain.Repair) (*domain.Repair, error)
	FindByID(ctx context.Context, id string) (*domain.Repair, error)
	List(ctx context.Context) ([]*domain.Repair, error)
	UpdateStatus(ctx context.Context, id string, status domain.RepairStatus) error
	// CostSummary returns the total estimated cost and the count of
	// repairs per status.
	CostSummary(ctx context.Context) (total float64, inProgress, completed int64, err error)
}

// RepairService defines use-case operations for the workshop.
type RepairService interface {
	CreateRepair(ctx context.Context, input CreateRepairInput) (*domain.Repair, error)
	ListRepairs(ctx context.Context) ([]*domain.Repair, error)
	// UpdateRepairStatus moves a repair to the given status, validating
	// the transition, and releases the vehicle back to stock on completion.
	UpdateRepairStatus(ctx context.Context, id string, status domain.RepairStatus) (*domain.Repair, error)
}
