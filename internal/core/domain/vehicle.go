package domain

import (
	"errors"
	"time"
)

// VehicleStatus represents the lifecycle state of a vehicle on the lot.
type VehicleStatus string

const (
	StatusInStock  VehicleStatus = "estoque"
	StatusSold     VehicleStatus = "vendido"
	StatusInRepair VehicleStatus = "reparo"
)

// validTransitions defines the allowed vehicle state machine. A sold
// vehicle never returns to the lot.
var validTransitions = map[VehicleStatus][]VehicleStatus{
	StatusInStock:  {StatusSold, StatusInRepair},
	StatusInRepair: {StatusInStock, StatusSold},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrVehicleNotFound = errors.New("vehicle not found")
var ErrVehicleUnavailable = errors.New("vehicle not available")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status
// to next is valid.
func (s VehicleStatus) CanTransitionTo(next VehicleStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidVehicleStatus reports whether s is a known vehicle status.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case StatusInStock, StatusSold, StatusInRepair:
		return true
	}
	return false
}

// StatusHistoryEntry records a single status transition on a vehicle.
type StatusHistoryEntry struct {
	Status    VehicleStatus `json:"status" bson:"status"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
	Source    string        `json:"source,omitempty" bson:"source,omitempty"`
}

// Vehicle is the core aggregate of the dealership inventory.
type Vehicle struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	Model         string               `json:"model" bson:"model"`
	Brand         string               `json:"brand" bson:"brand"`
	Year          int                  `json:"year" bson:"year"`
	Price         float64              `json:"price" bson:"price"`
	Status        VehicleStatus        `json:"status" bson:"status"`
	Color         string               `json:"color,omitempty" bson:"color,omitempty"`
	Mileage       int                  `json:"mileage,omitempty" bson:"mileage,omitempty"`
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
