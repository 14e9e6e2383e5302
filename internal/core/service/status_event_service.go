package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/api/metrics"
	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, vehicleID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, vehicleID, status string, ts time.Time) error
}

type statusEventService struct {
	vehicleRepo ports.VehicleRepository
	dedup       DedupChecker
	log         zerolog.Logger
}

// NewStatusEventService returns a StatusEventService implementation.
func NewStatusEventService(vehicleRepo ports.VehicleRepository, dedup DedupChecker, log zerolog.Logger) ports.StatusEventService {
	return &statusEventService{vehicleRepo: vehicleRepo, dedup: dedup, log: log}
}

// Process validates, deduplicates, and applies a single vehicle status
// event.
func (s *statusEventService) Process(ctx context.Context, in ports.VehicleStatusEvent) error {
	timer := prometheus.NewTimer(metrics.EventProcessingDuration.WithLabelValues(in.Status))
	defer timer.ObserveDuration()

	newStatus := domain.VehicleStatus(in.Status)
	if !domain.ValidVehicleStatus(newStatus) {
		metrics.EventsErrorsTotal.WithLabelValues("unknown_status").Inc()
		return fmt.Errorf("process event: unknown status %q", in.Status)
	}

	// Idempotency check; duplicates are silently skipped.
	isDup, err := s.dedup.IsDuplicate(ctx, in.VehicleID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("vehicle_id", in.VehicleID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("vehicle_id", in.VehicleID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	vehicle, err := s.vehicleRepo.FindByID(ctx, in.VehicleID)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("vehicle_not_found").Inc()
		return fmt.Errorf("process event: %w", err)
	}

	if !vehicle.Status.CanTransitionTo(newStatus) {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, vehicle.Status, newStatus)
	}

	// Mark before writing so a retried event is not applied twice.
	if markErr := s.dedup.Mark(ctx, in.VehicleID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("vehicle_id", in.VehicleID).Msg("failed to set dedup key")
	}

	entry := domain.StatusHistoryEntry{
		Status:    newStatus,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, in.VehicleID, newStatus, entry); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process event: update status: %w", err)
	}

	metrics.EventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	s.log.Info().
		Str("vehicle_id", in.VehicleID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("status event processed")

	return nil
}
