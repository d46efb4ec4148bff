package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medication is one prescribed medicine line.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// Therapy is one prescribed therapy line.
type Therapy struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MedicationList is stored as a JSONB column.
type MedicationList []Medication

// Value implements driver.Valuer
func (m MedicationList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *MedicationList) Scan(value interface{}) error {
	return scanJSONList(value, m)
}

// TherapyList is stored as a JSONB column.
type TherapyList []Therapy

// Value implements driver.Valuer
func (t TherapyList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner
func (t *TherapyList) Scan(value interface{}) error {
	return scanJSONList(value, t)
}

func scanJSONList(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dest)
}

// Prescription is a clinical note authored by a doctor for a patient,
// scoped to a hospital. Immutable once created except for deletion by
// same-tenant staff.
type Prescription struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"hospital_id"`
	PatientID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName string         `gorm:"type:varchar(255)" json:"patient_name,omitempty"`
	DoctorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName  string         `gorm:"type:varchar(255)" json:"doctor_name,omitempty"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Complaints  string         `gorm:"type:text" json:"complaints,omitempty"`
	Advice      string         `gorm:"type:text" json:"advice,omitempty"`
	Meds        MedicationList `gorm:"type:jsonb" json:"meds,omitempty"`
	Therapies   TherapyList    `gorm:"type:jsonb" json:"therapies,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Patient  *Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor   *User     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
