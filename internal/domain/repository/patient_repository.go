package repository

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	ReplaceGuardians(db *gorm.DB, patient *entity.Patient, guardians []entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
