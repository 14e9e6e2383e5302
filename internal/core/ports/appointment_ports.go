package ports

import (
	"context"
	"time"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// CreateAppointmentInput carries a client booking request.
type CreateAppointmentInput struct {
	ClientID  string
	VehicleID string
	Type      domain.AppointmentType
	Date      time.Time
	Time      string
	Location  string
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// ListByClient returns the client's appointments; an empty clientID
	// returns all of them (dealer view).
	ListByClient(ctx context.Context, clientID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// AppointmentService defines use-case operations for scheduling.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, role, clientID string) ([]*domain.Appointment, error)
	// CancelAppointment cancels a scheduled appointment owned by clientID.
	CancelAppointment(ctx context.Context, id, clientID string) (*domain.Appointment, error)
}
