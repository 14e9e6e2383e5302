package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, vehicleID, status string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, vehicleID, status string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, vehicleID+":"+status)
	return nil
}

func TestStatusEventService_HappyPath(t *testing.T) {
	repo := newStubVehicleRepo()
	seedVehicle(repo, "v1", domain.StatusInStock)
	dedup := &stubDedup{}

	svc := NewStatusEventService(repo, dedup, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "v1",
		Status:    string(domain.StatusSold),
		Timestamp: time.Now(),
		Source:    "sale",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.statusSet) != 1 || repo.statusSet[0] != "v1:vendido" {
		t.Errorf("expected status update, got: %v", repo.statusSet)
	}
	if len(dedup.marked) != 1 {
		t.Errorf("expected dedup key marked")
	}
	if v := repo.byID["v1"]; len(v.StatusHistory) != 2 {
		t.Errorf("expected history appended, got: %v", v.StatusHistory)
	}
}

func TestStatusEventService_DuplicateSkipped(t *testing.T) {
	repo := newStubVehicleRepo()
	seedVehicle(repo, "v1", domain.StatusInStock)
	dedup := &stubDedup{dupResult: true}

	svc := NewStatusEventService(repo, dedup, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "v1",
		Status:    string(domain.StatusSold),
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.statusSet) != 0 {
		t.Errorf("duplicate must not update status, got: %v", repo.statusSet)
	}
}

func TestStatusEventService_SoldIsTerminal(t *testing.T) {
	repo := newStubVehicleRepo()
	seedVehicle(repo, "v1", domain.StatusSold)

	svc := NewStatusEventService(repo, &stubDedup{}, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "v1",
		Status:    string(domain.StatusInRepair),
		Timestamp: time.Now(),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	if len(repo.statusSet) != 0 {
		t.Errorf("invalid transition must not update status")
	}
}

func TestStatusEventService_UnknownStatusRejected(t *testing.T) {
	svc := NewStatusEventService(newStubVehicleRepo(), &stubDedup{}, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "v1",
		Status:    "leilao",
		Timestamp: time.Now(),
	})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestStatusEventService_UnknownVehicle(t *testing.T) {
	svc := NewStatusEventService(newStubVehicleRepo(), &stubDedup{}, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "missing",
		Status:    string(domain.StatusSold),
		Timestamp: time.Now(),
	})
	if !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got: %v", err)
	}
}

func TestStatusEventService_DedupFailureProcessesAnyway(t *testing.T) {
	repo := newStubVehicleRepo()
	seedVehicle(repo, "v1", domain.StatusInStock)
	dedup := &stubDedup{dupErr: errors.New("redis down")}

	svc := NewStatusEventService(repo, dedup, zerolog.Nop())
	err := svc.Process(context.Background(), ports.VehicleStatusEvent{
		VehicleID: "v1",
		Status:    string(domain.StatusSold),
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.statusSet) != 1 {
		t.Errorf("expected status update despite dedup failure")
	}
}
