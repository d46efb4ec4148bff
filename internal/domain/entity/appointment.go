package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType mirrors the role of the staff member the appointment is
// booked with.
type AppointmentType string

const (
	AppointmentTypeDoctor    AppointmentType = "doctor"
	AppointmentTypeTherapist AppointmentType = "therapist"
)

// Appointment is a booking between a patient user and a staff user
// (doctor or therapist), scoped to a hospital. Appointments are never
// hard-deleted, only transitioned to cancelled.
type Appointment struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"hospital_id"`
	PatientID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	StaffID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"staff_id"`
	Type       AppointmentType   `gorm:"type:varchar(20);not null" json:"type"`
	StartTime  time.Time         `gorm:"not null" json:"start_time"`
	EndTime    time.Time         `gorm:"not null" json:"end_time"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Patient  *User     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Staff    *User     `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsTerminal reports whether the appointment reached a terminal state.
// completed and cancelled permit no further mutation; transitions into
// confirmed/completed are driven by staff workflow outside this core.
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// Cancel transitions pending/confirmed to cancelled. Returns false when the
// appointment is already terminal.
func (a *Appointment) Cancel() bool {
	if a.IsTerminal() {
		return false
	}
	a.Status = AppointmentStatusCancelled
	return true
}

// Reschedule moves the appointment to new times and resets it to pending.
// Returns false when the appointment is already terminal.
func (a *Appointment) Reschedule(start, end time.Time) bool {
	if a.IsTerminal() {
		return false
	}
	a.StartTime = start
	a.EndTime = end
	a.Status = AppointmentStatusPending
	return true
}
