package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// CreateProposalInput carries a client's purchase offer.
type CreateProposalInput struct {
	ClientID  string
	VehicleID string
	Value     float64
}

// ProposalRepository defines persistence operations for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
	FindByID(ctx context.Context, id string) (*domain.Proposal, error)
	// ListByClient returns the client's proposals; an empty clientID
	// returns all proposals (dealer view).
	ListByClient(ctx context.Context, clientID string) ([]*domain.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProposalStatus) error
}

// ProposalService defines use-case operations for purchase proposals.
type ProposalService interface {
	CreateProposal(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error)
	// ListProposals scopes the result to the caller: clients see their
	// own proposals, dealers see all of them.
	ListProposals(ctx context.Context, role, clientID string) ([]*domain.Proposal, error)
	// DecideProposal approves or rejects a pending proposal.
	DecideProposal(ctx context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error)
}
