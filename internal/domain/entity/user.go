package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the user role enum. Staff roles are always tenant-affiliated,
// elevated roles are tenant-unrestricted.
type Role string

const (
	RolePatient       Role = "patient"
	RoleGuardian      Role = "guardian"
	RoleDoctor        Role = "doctor"
	RoleTherapist     Role = "therapist"
	RoleSupport       Role = "support"
	RoleHospitalAdmin Role = "hospital_admin"
	RoleAdmin         Role = "admin"
	RoleSuperAdmin    Role = "super_admin"
)

// IsValid reports whether the role is one of the enumerated values.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleGuardian, RoleDoctor, RoleTherapist, RoleSupport,
		RoleHospitalAdmin, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role is a hospital staff role.
func (r Role) IsStaff() bool {
	switch r {
	case RoleDoctor, RoleTherapist, RoleSupport, RoleHospitalAdmin:
		return true
	}
	return false
}

// IsElevated reports whether the role is tenant-unrestricted.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AssignableStaffRoles are the roles manageable through the hospital staff
// roster endpoints. hospital_admin is deliberately excluded.
var AssignableStaffRoles = []Role{RoleDoctor, RoleTherapist, RoleSupport}

// IsAssignableStaffRole reports whether the role can be assigned or removed
// via the staff roster.
func (r Role) IsAssignableStaffRole() bool {
	for _, role := range AssignableStaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents the centralized identity table. Email, phone and username
// are nullable uniques so staff can be created with either login handle.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone        *string    `gorm:"type:varchar(30);uniqueIndex" json:"phone,omitempty"`
	Username     *string    `gorm:"type:varchar(100);uniqueIndex" json:"username,omitempty"`
	Role         Role       `gorm:"type:varchar(30);not null;index" json:"role"`
	HospitalID   *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Department   string     `gorm:"type:varchar(100)" json:"department,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (User) TableName() string {
	return "users"
}
