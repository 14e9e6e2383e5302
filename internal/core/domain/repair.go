package domain

import (
	"errors"
	"time"
)

// RepairStatus represents the lifecycle state of a repair order.
type RepairStatus string

const (
	RepairInProgress RepairStatus = "em_andamento"
	RepairCompleted  RepairStatus = "concluido"
)

var ErrRepairNotFound = errors.New("repair not found")
var ErrInvalidRepairTransition = errors.New("invalid repair status transition")

// CanTransitionTo reports whether the repair may move to next. The only
// allowed move is in-progress to completed.
func (s RepairStatus) CanTransitionTo(next RepairStatus) bool {
	return s == RepairInProgress && next == RepairCompleted
}

// ValidRepairStatus reports whether s is a known repair status.
func ValidRepairStatus(s RepairStatus) bool {
	return s == RepairInProgress || s == RepairCompleted
}

// Repair is a workshop order opened against a vehicle.
type Repair struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	VehicleID     string       `json:"vehicle_id" bson:"vehicle_id"`
	VehicleModel  string       `json:"vehicle_model" bson:"vehicle_model"`
	Description   string       `json:"description" bson:"description"`
	EstimatedCost float64      `json:"estimated_cost" bson:"estimated_cost"`
	Status        RepairStatus `json:"status" bson:"status"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}
