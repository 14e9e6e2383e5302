package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// VehicleService implements inventory use cases.
type VehicleService struct {
	repo   ports.VehicleRepository
	logger zerolog.Logger
}

func NewVehicleService(repo ports.VehicleRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{repo: repo, logger: logger}
}

// CreateVehicle adds a vehicle to the lot. New vehicles always start in
// stock.
func (s *VehicleService) CreateVehicle(ctx context.Context, input ports.CreateVehicleInput) (*domain.Vehicle, error) {
	now := time.Now().UTC()
	vehicle := &domain.Vehicle{
		Model:       input.Model,
		Brand:       input.Brand,
		Year:        input.Year,
		Price:       input.Price,
		Status:      domain.StatusInStock,
		Color:       input.Color,
		Mileage:     input.Mileage,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusInStock, Timestamp: now, Source: "created"},
		},
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create vehicle")
		return nil, err
	}

	s.logger.Info().Str("vehicle_id", created.ID).Str("model", created.Model).Msg("vehicle created")
	return created, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VehicleService) ListVehicles(ctx context.Context, filter ports.ListVehiclesFilter) (*ports.ListVehiclesResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListVehiclesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, input ports.UpdateVehicleInput) (*domain.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.Price != nil {
		vehicle.Price = *input.Price
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	if input.Description != nil {
		vehicle.Description = *input.Description
	}
	vehicle.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, vehicle); err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", id).Msg("failed to update vehicle")
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("vehicle_id", id).Msg("vehicle deleted")
	return nil
}
