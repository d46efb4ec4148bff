package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is the tenant root. All staff, patients, appointments and
// prescriptions hang off exactly one hospital.
type Hospital struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff    []User    `gorm:"foreignKey:HospitalID" json:"staff,omitempty"`
	Patients []Patient `gorm:"foreignKey:HospitalID" json:"patients,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
