package domain

import (
	"errors"
	"time"
)

// ProposalStatus represents the review state of a purchase proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pendente"
	ProposalApproved ProposalStatus = "aprovada"
	ProposalRejected ProposalStatus = "recusada"
)

var ErrProposalNotFound = errors.New("proposal not found")
var ErrProposalAlreadyDecided = errors.New("proposal already decided")

// ValidProposalStatus reports whether s is a known proposal status.
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalPending, ProposalApproved, ProposalRejected:
		return true
	}
	return false
}

// Proposal is a client's purchase offer on a vehicle. Only pending
// proposals may be decided; a decision is final.
type Proposal struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	ClientID     string         `json:"client_id" bson:"client_id"`
	VehicleID    string         `json:"vehicle_id" bson:"vehicle_id"`
	VehicleLabel string         `json:"vehicle_label" bson:"vehicle_label"`
	Value        float64        `json:"value" bson:"value"`
	Status       ProposalStatus `json:"status" bson:"status"`
	Date         time.Time      `json:"date" bson:"date"`
}
