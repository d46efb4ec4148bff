package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest: patient_id is optional and only honored for
// staff/admin callers booking on a patient's behalf; otherwise the
// authenticated user is the patient.
type CreateAppointmentRequest struct {
	HospitalID uuid.UUID  `json:"hospital_id" validate:"required"`
	StaffID    uuid.UUID  `json:"staff_id" validate:"required"`
	Type       string     `json:"type" validate:"required,oneof=doctor therapist"`
	StartTime  time.Time  `json:"start_time" validate:"required"`
	EndTime    time.Time  `json:"end_time" validate:"required"`
	Notes      string     `json:"notes" validate:"omitempty"`
	PatientID  *uuid.UUID `json:"patient_id" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         uuid.UUID `json:"id"`
	HospitalID uuid.UUID `json:"hospital_id"`
	PatientID  uuid.UUID `json:"patient_id"`
	StaffID    uuid.UUID `json:"staff_id"`
	StaffName  string    `json:"staff_name,omitempty"`
	Type       string    `json:"type"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
