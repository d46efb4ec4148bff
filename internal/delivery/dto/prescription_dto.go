package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicationRequest struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"omitempty"`
	Frequency string `json:"frequency" validate:"omitempty"`
	Duration  string `json:"duration" validate:"omitempty"`
}

type TherapyRequest struct {
	Name     string `json:"name" validate:"required"`
	Sessions int    `json:"sessions" validate:"omitempty,gte=0"`
	Notes    string `json:"notes" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientID   uuid.UUID           `json:"patient_id" validate:"required"`
	PatientName string              `json:"patient_name" validate:"omitempty"`
	Date        string              `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD, defaults to today
	Complaints  string              `json:"complaints" validate:"omitempty"`
	Advice      string              `json:"advice" validate:"omitempty"`
	Meds        []MedicationRequest `json:"meds" validate:"omitempty,dive"`
	Therapies   []TherapyRequest    `json:"therapies" validate:"omitempty,dive"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID          uuid.UUID           `json:"id"`
	HospitalID  uuid.UUID           `json:"hospital_id"`
	PatientID   uuid.UUID           `json:"patient_id"`
	PatientName string              `json:"patient_name,omitempty"`
	DoctorID    uuid.UUID           `json:"doctor_id"`
	DoctorName  string              `json:"doctor_name,omitempty"`
	Date        time.Time           `json:"date"`
	Complaints  string              `json:"complaints,omitempty"`
	Advice      string              `json:"advice,omitempty"`
	Meds        []MedicationRequest `json:"meds,omitempty"`
	Therapies   []TherapyRequest    `json:"therapies,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
