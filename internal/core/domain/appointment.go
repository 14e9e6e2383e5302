package domain

import (
	"errors"
	"time"
)

// AppointmentType distinguishes a test drive from a plain showroom visit.
type AppointmentType string

const (
	AppointmentTestDrive AppointmentType = "test_drive"
	AppointmentVisit     AppointmentType = "visita"
)

// AppointmentStatus represents the lifecycle state of a scheduled visit.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "agendado"
	AppointmentDone      AppointmentStatus = "concluido"
	AppointmentCancelled AppointmentStatus = "cancelado"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrAppointmentNotCancellable = errors.New("appointment cannot be cancelled")

// ValidAppointmentType reports whether t is a known appointment type.
func ValidAppointmentType(t AppointmentType) bool {
	return t == AppointmentTestDrive || t == AppointmentVisit
}

// Appointment is a client booking for a test drive or a visit.
type Appointment struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	ClientID     string            `json:"client_id" bson:"client_id"`
	VehicleID    string            `json:"vehicle_id" bson:"vehicle_id"`
	VehicleLabel string            `json:"vehicle_label" bson:"vehicle_label"`
	Type         AppointmentType   `json:"type" bson:"type"`
	Date         time.Time         `json:"date" bson:"date"`
	Time         string            `json:"time" bson:"time"`
	Location     string            `json:"location" bson:"location"`
	Status       AppointmentStatus `json:"status" bson:"status"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
}
