package repository

import (
	"errors"

	"hospital-admin-platform/internal/domain/entity"
	domainRepo "hospital-admin-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByHospital(db *gorm.DB, hospitalID uuid.UUID, patientID *uuid.UUID) ([]entity.Prescription, error) {
	query := db.Where("hospital_id = ?", hospitalID)
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}
	var prescriptions []entity.Prescription
	if err := query.Order("created_at DESC").Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// FindByIDInHospital looks a prescription up within one tenant only, so a
// cross-tenant ID probe behaves exactly like a missing record.
func (r *prescriptionRepository) FindByIDInHospital(db *gorm.DB, id, hospitalID uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Where("id = ? AND hospital_id = ?", id, hospitalID).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Prescription{}).Error
}
