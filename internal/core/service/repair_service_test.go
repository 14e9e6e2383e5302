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

type stubRepairRepo struct {
	byID      map[string]*domain.Repair
	createErr error
	statusSet []string // "id:status"
	total     float64
	inProg    int64
	completed int64
}

func newStubRepairRepo() *stubRepairRepo {
	return &stubRepairRepo{byID: map[string]*domain.Repair{}}
}

func (r *stubRepairRepo) Create(_ context.Context, rep *domain.Repair) (*domain.Repair, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *rep
	clone.ID = "rep_1"
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubRepairRepo) FindByID(_ context.Context, id string) (*domain.Repair, error) {
	rep, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRepairNotFound
	}
	clone := *rep
	return &clone, nil
}

func (r *stubRepairRepo) List(_ context.Context) ([]*domain.Repair, error) {
	out := make([]*domain.Repair, 0, len(r.byID))
	for _, rep := range r.byID {
		clone := *rep
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRepairRepo) UpdateStatus(_ context.Context, id string, status domain.RepairStatus) error {
	rep, ok := r.byID[id]
	if !ok {
		return domain.ErrRepairNotFound
	}
	rep.Status = status
	r.statusSet = append(r.statusSet, id+":"+string(status))
	return nil
}

func (r *stubRepairRepo) CostSummary(_ context.Context) (float64, int64, int64, error) {
	return r.total, r.inProg, r.completed, nil
}

func seedRepair(repo *stubRepairRepo, id, vehicleID string, status domain.RepairStatus) {
	now := time.Now().UTC()
	repo.byID[id] = &domain.Repair{
		ID:            id,
		VehicleID:     vehicleID,
		VehicleModel:  "Toyota Corolla",
		Description:   "troca de embreagem",
		EstimatedCost: 2500,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepairService_CreateEmitsInRepairEvent(t *testing.T) {
	vehicles := newStubVehicleRepo()
	seedVehicle(vehicles, "v1", domain.StatusInStock)
	repairs := newStubRepairRepo()
	pub := &stubPublisher{}

	svc := NewRepairService(repairs, vehicles, pub, zerolog.Nop())
	created, err := svc.CreateRepair(context.Background(), ports.CreateRepairInput{
		VehicleID:     "v1",
		Description:   "revisão",
		EstimatedCost: 800,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if created.Status != domain.RepairInProgress {
		t.Errorf("expected status %q, got %q", domain.RepairInProgress, created.Status)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected one event, got %d", len(pub.events))
	}
	if pub.events[0].Status != string(domain.StatusInRepair) || pub.events[0].Source != "repair" {
		t.Errorf("unexpected event: %+v", pub.events[0])
	}
}

func TestRepairService_RejectsSoldVehicle(t *testing.T) {
	vehicles := newStubVehicleRepo()
	seedVehicle(vehicles, "v1", domain.StatusSold)

	svc := NewRepairService(newStubRepairRepo(), vehicles, &stubPublisher{}, zerolog.Nop())
	_, err := svc.CreateRepair(context.Background(), ports.CreateRepairInput{VehicleID: "v1"})
	if !errors.Is(err, domain.ErrVehicleUnavailable) {
		t.Fatalf("expected ErrVehicleUnavailable, got: %v", err)
	}
}

func TestRepairService_CompletionReleasesVehicle(t *testing.T) {
	repairs := newStubRepairRepo()
	seedRepair(repairs, "rep_1", "v1", domain.RepairInProgress)
	pub := &stubPublisher{}

	svc := NewRepairService(repairs, newStubVehicleRepo(), pub, zerolog.Nop())
	updated, err := svc.UpdateRepairStatus(context.Background(), "rep_1", domain.RepairCompleted)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != domain.RepairCompleted {
		t.Errorf("expected status %q, got %q", domain.RepairCompleted, updated.Status)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected release event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.VehicleID != "v1" || ev.Status != string(domain.StatusInStock) || ev.Source != "repair_completed" {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestRepairService_CompletedIsTerminal(t *testing.T) {
	repairs := newStubRepairRepo()
	seedRepair(repairs, "rep_1", "v1", domain.RepairCompleted)
	pub := &stubPublisher{}

	svc := NewRepairService(repairs, newStubVehicleRepo(), pub, zerolog.Nop())
	_, err := svc.UpdateRepairStatus(context.Background(), "rep_1", domain.RepairInProgress)
	if !errors.Is(err, domain.ErrInvalidRepairTransition) {
		t.Fatalf("expected ErrInvalidRepairTransition, got: %v", err)
	}
	if len(pub.events) != 0 {
		t.Errorf("expected no event, got: %v", pub.events)
	}
}

func TestRepairService_RejectsUnknownStatus(t *testing.T) {
	svc := NewRepairService(newStubRepairRepo(), newStubVehicleRepo(), &stubPublisher{}, zerolog.Nop())
	_, err := svc.UpdateRepairStatus(context.Background(), "rep_1", domain.RepairStatus("desmontado"))
	if !errors.Is(err, domain.ErrInvalidRepairTransition) {
		t.Fatalf("expected ErrInvalidRepairTransition, got: %v", err)
	}
}
