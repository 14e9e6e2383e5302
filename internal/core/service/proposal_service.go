package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

// ProposalService implements purchase proposal use cases.
type ProposalService struct {
	proposalRepo ports.ProposalRepository
	vehicleRepo  ports.VehicleRepository
	logger       zerolog.Logger
}

func NewProposalService(proposalRepo ports.ProposalRepository, vehicleRepo ports.VehicleRepository, logger zerolog.Logger) *ProposalService {
	return &ProposalService{proposalRepo: proposalRepo, vehicleRepo: vehicleRepo, logger: logger}
}

func (s *ProposalService) CreateProposal(ctx context.Context, input ports.CreateProposalInput) (*domain.Proposal, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == domain.StatusSold {
		return nil, domain.ErrVehicleUnavailable
	}

	proposal := &domain.Proposal{
		ClientID:     input.ClientID,
		VehicleID:    vehicle.ID,
		VehicleLabel: vehicleLabel(vehicle),
		Value:        input.Value,
		Status:       domain.ProposalPending,
		Date:         time.Now().UTC(),
	}

	created, err := s.proposalRepo.Create(ctx, proposal)
	if err != nil {
		s.logger.Error().Err(err).Str("vehicle_id", input.VehicleID).Msg("failed to create proposal")
		return nil, err
	}

	s.logger.Info().Str("proposal_id", created.ID).Str("client_id", input.ClientID).Msg("proposal created")
	return created, nil
}

// ListProposals scopes the result by role: clients see only their own
// proposals, dealers see everything.
func (s *ProposalService) ListProposals(ctx context.Context, role, clientID string) ([]*domain.Proposal, error) {
	if role == domain.RoleDealer {
		return s.proposalRepo.ListByClient(ctx, "")
	}
	return s.proposalRepo.ListByClient(ctx, clientID)
}

func (s *ProposalService) DecideProposal(ctx context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error) {
	if status != domain.ProposalApproved && status != domain.ProposalRejected {
		return nil, domain.ErrProposalAlreadyDecided
	}

	proposal, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal.Status != domain.ProposalPending {
		return nil, domain.ErrProposalAlreadyDecided
	}

	if err := s.proposalRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	proposal.Status = status

	s.logger.Info().Str("proposal_id", id).Str("status", string(status)).Msg("proposal decided")
	return proposal, nil
}

func vehicleLabel(v *domain.Vehicle) string {
	return v.Brand + " " + v.Model
}
