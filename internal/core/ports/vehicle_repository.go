package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// ListVehiclesFilter carries the optional query parameters for listing
// vehicles. Zero values mean "no filter".
type ListVehiclesFilter struct {
	Status string // optional: filter by vehicle status
	Year   int    // optional: filter by model year
	Brand  string // optional: case-insensitive brand match
	Page   int    // 1-based
	Limit  int    // max rows per page (capped by the service)
}

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	// List returns a page of vehicles matching filter and the total count.
	List(ctx context.Context, filter ListVehiclesFilter) ([]*domain.Vehicle, int64, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	// UpdateStatus atomically sets the vehicle status and appends a
	// history entry.
	UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus, entry domain.StatusHistoryEntry) error
	// CountByStatus returns the number of vehicles per status.
	CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int64, error)
}
