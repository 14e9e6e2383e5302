package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// AppointmentService implements test drive and visit scheduling.
type AppointmentService struct {
	appointmentRepo ports.AppointmentRepository
	vehicleRepo     ports.VehicleRepository
	logger          zerolog.Logger
}

func NewAppointmentService(appointmentRepo ports.AppointmentRepository, vehicleRepo ports.VehicleRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo, vehicleRepo: vehicleRepo, logger: logger}
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if !domain.ValidAppointmentType(input.Type) {
		input.Type = domain.AppointmentVisit
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		ClientID:     input.ClientID,
		VehicleID:    vehicle.ID,
		VehicleLabel: vehicleLabel(vehicle),
		Type:         input.Type,
		Date:         input.Date,
		Time:         input.Time,
		Location:     input.Location,
		Status:       domain.AppointmentScheduled,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", input.VehicleID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().Str("appointment_id", created.ID).Str("client_id", input.ClientID).Msg("appointment scheduled")
	return created, nil
}

func (s *AppointmentService) ListAppointments(ctx context.Context, role, clientID string) ([]*domain.Appointment, error) {
	if role == domain.RoleDealer {
		return s.appointmentRepo.ListByClient(ctx, "")
	}
	return s.appointmentRepo.ListByClient(ctx, clientID)
}

// CancelAppointment cancels a scheduled appointment. Clients may only
// cancel their own bookings.
func (s *AppointmentService) CancelAppointment(ctx context.Context, id, clientID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if clientID != "" && appointment.ClientID != clientID {
		return nil, domain.ErrForbidden
	}
	if appointment.Status != domain.AppointmentScheduled {
		return nil, domain.ErrAppointmentNotCancellable
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.AppointmentCancelled); err != nil {
		return nil, err
	}
	appointment.Status = domain.AppointmentCancelled

	s.logger.Info().Str("appointment_id", id).Msg("appointment cancelled")
	return appointment, nil
}
