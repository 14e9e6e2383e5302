package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// CreateVehicleInput carries all data needed to add a vehicle to the lot.
type CreateVehicleInput struct {
	Model       string
	Brand       string
	Year        int
	Price       float64
	Color       string
	Mileage     int
	Description string
}

// UpdateVehicleInput carries the mutable vehicle fields. Nil pointers
// leave the stored value untouched.
type UpdateVehicleInput struct {
	Model       *string
	Brand       *string
	Year        *int
	Price       *float64
	Color       *string
	Mileage     *int
	Description *string
}

// ListVehiclesResult is returned by ListVehicles.
type ListVehiclesResult struct {
	Items      []*domain.Vehicle
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// VehicleService defines use-case operations for the inventory.
type VehicleService interface {
	CreateVehicle(ctx context.Context, input CreateVehicleInput) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, filter ListVehiclesFilter) (*ListVehiclesResult, error)
	UpdateVehicle(ctx context.Context, id string, input UpdateVehicleInput) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}
