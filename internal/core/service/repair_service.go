package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// RepairService implements workshop use cases. Opening a repair sends
// the vehicle to "reparo"; completing it releases the vehicle back to
// stock, both via the status event pipeline.
type RepairService struct {
	repairRepo  ports.RepairRepository
	vehicleRepo ports.VehicleRepository
	events      ports.StatusEventPublisher
	logger      zerolog.Logger
}

func NewRepairService(repairRepo ports.RepairRepository, vehicleRepo ports.VehicleRepository, events ports.StatusEventPublisher, logger zerolog.Logger) *RepairService {
	return &RepairService{repairRepo: repairRepo, vehicleRepo: vehicleRepo, events: events, logger: logger}
}

func (s *RepairService) CreateRepair(ctx context.Context, input ports.CreateRepairInput) (*domain.Repair, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Status.CanTransitionTo(domain.StatusInRepair) {
		return nil, domain.ErrVehicleUnavailable
	}

	now := time.Now().UTC()
	repair := &domain.Repair{
		VehicleID:     vehicle.ID,
		VehicleModel:  vehicle.Brand + " " + vehicle.Model,
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		Status:        domain.RepairInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repairRepo.Create(ctx, repair)
	if err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", input.VehicleID).Msg("failed to open repair")
		return nil, err
	}

	s.events.Publish(ports.VehicleStatusEvent{
		VehicleID: vehicle.ID,
		Status:    string(domain.StatusInRepair),
		Timestamp: now,
		Source:    "repair",
	})

	s.logger.Info().Str("repair_id", created.ID).Str("vehicle_id", vehicle.ID).Msg("repair opened")
	return created, nil
}

func (s *RepairService) ListRepairs(ctx context.Context) ([]*domain.Repair, error) {
	return s.repairRepo.List(ctx)
}

func (s *RepairService) UpdateRepairStatus(ctx context.Context, id string, status domain.RepairStatus) (*domain.Repair, error) {
	if !domain.ValidRepairStatus(status) {
		return nil, domain.ErrInvalidRepairTransition
	}

	repair, err := s.repairRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !repair.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidRepairTransition
	}

	if err := s.repairRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	repair.Status = status
	repair.UpdatedAt = time.Now().UTC()

	if status == domain.RepairCompleted {
		s.events.Publish(ports.VehicleStatusEvent{
			VehicleID: repair.VehicleID,
			Status:    string(domain.StatusInStock),
			Timestamp: repair.UpdatedAt,
			Source:    "repair_completed",
		})
	}

	s.logger.Info().Str("repair_id", id).Str("status", string(status)).Msg("repair status updated")
	return repair, nil
}
