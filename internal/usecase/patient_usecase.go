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
	ErrPatientNotFound          = errors.New("patient not found")
	ErrHospitalIDRequired       = errors.New("hospital_id is required")
	ErrNoHospitalAffiliation    = errors.New("actor has no hospital affiliation")
	ErrHospitalChangeNotAllowed = errors.New("hospital_id cannot be changed")
	ErrInvalidDateOfBirth       = errors.New("invalid date_of_birth format")
	ErrGuardianNotFound         = errors.New("guardian user not found")
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	scope := authz.ListScope(actor, authz.ResourcePatient)
	var patients []entity.Patient
	var err error
	switch scope.Kind {
	case authz.ScopeGlobal:
		patients, err = u.patientRepo.FindAll(u.db.WithContext(ctx))
	case authz.ScopeTenant:
		patients, err = u.patientRepo.FindByHospital(u.db.WithContext(ctx), scope.HospitalID)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	decision := authz.Authorize(actor, authz.ActionRead, authz.Resource{
		Kind:       authz.ResourcePatient,
		HospitalID: &patient.HospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	return converter.PatientToResponse(patient), nil
}

// CreatePatient creates a clinical record. super_admin must name the target
// hospital in the body. Everyone else gets their own hospital stamped and
// cannot create records elsewhere.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	hospitalID, err := resolvePatientHospital(actor, req.HospitalID)
	if err != nil {
		return nil, err
	}

	decision := authz.Authorize(actor, authz.ActionCreate, authz.Resource{
		Kind:       authz.ResourcePatient,
		HospitalID: &hospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	patient := &entity.Patient{
		HospitalID:  hospitalID,
		UserID:      req.UserID,
		FullName:    req.FullName,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isForeignKeyError(err, "user") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if len(req.GuardianIDs) > 0 {
		guardians, err := u.resolveGuardians(tx, req.GuardianIDs)
		if err != nil {
			return nil, err
		}
		if err := u.patientRepo.ReplaceGuardians(tx, patient, guardians); err != nil {
			u.log.Warnf("Failed to link guardians: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	decision := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:       authz.ResourcePatient,
		HospitalID: &patient.HospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if req.HospitalID != nil && *req.HospitalID != patient.HospitalID {
		if actor.Role != entity.RoleSuperAdmin {
			return nil, ErrHospitalChangeNotAllowed
		}
		hospital, err := u.hospitalRepo.FindByID(tx, *req.HospitalID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, ErrHospitalNotFound
		}
		patient.HospitalID = *req.HospitalID
	}

	old := converter.PatientToResponse(patient)
	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.DateOfBirth != "" {
		dob, err := parseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		patient.DateOfBirth = dob
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.Notes != "" {
		patient.Notes = req.Notes
	}
	if req.UserID != nil {
		patient.UserID = req.UserID
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isForeignKeyError(err, "user") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	if req.GuardianIDs != nil {
		guardians, err := u.resolveGuardians(tx, req.GuardianIDs)
		if err != nil {
			return nil, err
		}
		if err := u.patientRepo.ReplaceGuardians(tx, patient, guardians); err != nil {
			u.log.Warnf("Failed to replace guardians: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), old, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return ErrActorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	decision := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:       authz.ResourcePatient,
		HospitalID: &patient.HospitalID,
	})
	if !decision.Allowed {
		return ErrForbidden
	}

	if err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionPatientDelete, "patient", id.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *patientUsecase) resolveGuardians(tx *gorm.DB, ids []uuid.UUID) ([]entity.User, error) {
	if len(ids) == 0 {
		return []entity.User{}, nil
	}
	guardians, err := u.userRepo.FindByIDs(tx, ids)
	if err != nil {
		return nil, err
	}
	if len(guardians) != len(ids) {
		return nil, ErrGuardianNotFound
	}
	return guardians, nil
}

// resolvePatientHospital picks the tenant a new clinical record belongs to.
// Only super_admin may name one in the body; every other role gets their own
// hospital stamped and any body value is ignored.
func resolvePatientHospital(actor authz.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.Role == entity.RoleSuperAdmin {
		if requested == nil {
			return uuid.Nil, ErrHospitalIDRequired
		}
		return *requested, nil
	}
	if actor.HospitalID == nil {
		return uuid.Nil, ErrNoHospitalAffiliation
	}
	return *actor.HospitalID, nil
}

func parseDateOfBirth(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	return &dob, nil
}
