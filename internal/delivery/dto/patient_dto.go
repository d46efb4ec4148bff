package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreatePatientRequest: hospital_id is honored only for super_admin
// callers; everyone else gets their own hospital stamped.
type CreatePatientRequest struct {
	FullName    string      `json:"full_name" validate:"required,min=2"`
	HospitalID  *uuid.UUID  `json:"hospital_id" validate:"omitempty"`
	UserID      *uuid.UUID  `json:"user_id" validate:"omitempty"`
	DateOfBirth string      `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender      string      `json:"gender" validate:"omitempty,oneof=M F"`
	Phone       string      `json:"phone" validate:"omitempty,min=7,max=30"`
	Address     string      `json:"address" validate:"omitempty"`
	Notes       string      `json:"notes" validate:"omitempty"`
	GuardianIDs []uuid.UUID `json:"guardian_ids" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	FullName    string      `json:"full_name" validate:"omitempty,min=2"`
	HospitalID  *uuid.UUID  `json:"hospital_id" validate:"omitempty"`
	UserID      *uuid.UUID  `json:"user_id" validate:"omitempty"`
	DateOfBirth string      `json:"date_of_birth" validate:"omitempty"`
	Gender      string      `json:"gender" validate:"omitempty,oneof=M F"`
	Phone       string      `json:"phone" validate:"omitempty,min=7,max=30"`
	Address     string      `json:"address" validate:"omitempty"`
	Notes       string      `json:"notes" validate:"omitempty"`
	GuardianIDs []uuid.UUID `json:"guardian_ids" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID      `json:"id"`
	HospitalID  uuid.UUID      `json:"hospital_id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	FullName    string         `json:"full_name"`
	DateOfBirth string         `json:"date_of_birth,omitempty"`
	Gender      string         `json:"gender,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Address     string         `json:"address,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Guardians   []UserResponse `json:"guardians,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
