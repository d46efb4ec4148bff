package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateHospitalRequest optionally carries a nested hospital_admin
// creation request (admin_email + admin_password).
type CreateHospitalRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Address       string `json:"address" validate:"omitempty"`
	Phone         string `json:"phone" validate:"omitempty,min=7,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	AdminEmail    string `json:"admin_email" validate:"omitempty,email"`
	AdminPassword string `json:"admin_password" validate:"omitempty,min=6"`
	AdminName     string `json:"admin_name" validate:"omitempty,min=2"`
	AdminPhone    string `json:"admin_phone" validate:"omitempty,min=7,max=30"`
}

type UpdateHospitalRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2"`
	Address string `json:"address" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// AssignStaffRequest creates a staff login under the hospital in the URL
// path. The hospital is always taken from the path, never from the body.
type AssignStaffRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=7,max=30"`
	Username   string `json:"username" validate:"omitempty,min=3"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=doctor therapist support"`
	Department string `json:"department" validate:"omitempty"`
}

// Response DTOs

type HospitalResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}

type StaffListResponse struct {
	Staff []UserResponse `json:"staff"`
	Total int            `json:"total"`
}
