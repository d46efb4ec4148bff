package repository

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByHospital(db *gorm.DB, hospitalID uuid.UUID, patientID *uuid.UUID) ([]entity.Prescription, error)
	FindByIDInHospital(db *gorm.DB, id, hospitalID uuid.UUID) (*entity.Prescription, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
