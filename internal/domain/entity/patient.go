package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinical record owned by exactly one hospital. It may be
// linked to the patient's own login user and to guardian users.
type Patient struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"hospital_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	Phone       string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital  *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Guardians []User    `gorm:"many2many:patient_guardians" json:"guardians,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
