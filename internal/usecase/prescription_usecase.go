package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/converter"
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/delivery/http/middleware"
	"hospital-admin-platform/internal/domain/entity"
	"hospital-admin-platform/internal/domain/repository"
	"hospital-admin-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidDate          = errors.New("invalid date format")
)

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, patientID *uuid.UUID) (*dto.PrescriptionListResponse, error)
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id uuid.UUID) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		auditService:     auditService,
	}
}

// ListPrescriptions returns prescriptions of the caller's hospital, newest
// first, optionally filtered to one patient. Callers without a hospital
// affiliation see an empty list.
func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context, patientID *uuid.UUID) (*dto.PrescriptionListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	scope := authz.ListScope(actor, authz.ResourcePrescription)
	var prescriptions []entity.Prescription
	if scope.Kind == authz.ScopeTenant {
		var err error
		prescriptions, err = u.prescriptionRepo.FindByHospital(u.db.WithContext(ctx), scope.HospitalID, patientID)
		if err != nil {
			u.log.Warnf("Failed to list prescriptions: %+v", err)
			return nil, err
		}
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// CreatePrescription records a clinical note in the caller's hospital. The
// signed-in user is recorded as the author. The patient record must belong
// to the same hospital.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}
	if actor.HospitalID == nil {
		return nil, ErrNoHospitalAffiliation
	}
	hospitalID := *actor.HospitalID

	decision := authz.Authorize(actor, authz.ActionCreate, authz.Resource{
		Kind:       authz.ResourcePrescription,
		HospitalID: &hospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.HospitalID != hospitalID {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.userRepo.FindByID(tx, actor.ID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrUserNotFound
	}

	patientName := req.PatientName
	if patientName == "" {
		patientName = patient.FullName
	}

	prescription := &entity.Prescription{
		HospitalID:  hospitalID,
		PatientID:   patient.ID,
		PatientName: patientName,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.FullName,
		Date:        date,
		Complaints:  req.Complaints,
		Advice:      req.Advice,
		Meds:        converter.MedicationsFromRequests(req.Meds),
		Therapies:   converter.TherapiesFromRequests(req.Therapies),
	}
	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), converter.PrescriptionToResponse(prescription)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// DeletePrescription removes a prescription of the caller's hospital. A
// prescription of another hospital is indistinguishable from a missing one.
func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return ErrActorNotFound
	}
	if actor.HospitalID == nil {
		return ErrPrescriptionNotFound
	}
	hospitalID := *actor.HospitalID

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByIDInHospital(tx, id, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	decision := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:       authz.ResourcePrescription,
		HospitalID: &prescription.HospitalID,
	})
	if !decision.Allowed {
		return ErrForbidden
	}

	if err := u.prescriptionRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionPrescriptionDelete, "prescription", id.String(), converter.PrescriptionToResponse(prescription)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
