package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/converter"
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/delivery/http/middleware"
	"hospital-admin-platform/internal/domain/entity"
	"hospital-admin-platform/internal/domain/repository"
	"hospital-admin-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrStaffNotFound      = errors.New("staff user not found")
	ErrInvalidStaffRole   = errors.New("invalid staff role")
	ErrStaffNotInHospital = errors.New("user not in this hospital")
	ErrStaffHandleMissing = errors.New("full_name, password and one of email/username are required")
)

type HospitalUsecase interface {
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error)
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	UpdateHospital(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, id uuid.UUID) error
	ListStaff(ctx context.Context, hospitalID uuid.UUID) (*dto.StaffListResponse, error)
	AssignStaff(ctx context.Context, hospitalID uuid.UUID, req *dto.AssignStaffRequest) (*dto.UserResponse, error)
	RemoveStaff(ctx context.Context, hospitalID, userID uuid.UUID) error
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// ListHospitals returns the hospital directory. All roles may browse it for
// booking; a hospital_admin only sees their own hospital, and one without an
// assignment sees an empty list.
func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	scope := authz.ListScope(actor, authz.ResourceHospital)
	var hospitals []entity.Hospital
	switch scope.Kind {
	case authz.ScopeGlobal:
		var err error
		hospitals, err = u.hospitalRepo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			u.log.Warnf("Failed to list hospitals: %+v", err)
			return nil, err
		}
	case authz.ScopeTenant:
		hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), scope.HospitalID)
		if err != nil {
			u.log.Warnf("Failed to find hospital %s: %+v", scope.HospitalID, err)
			return nil, err
		}
		if hospital != nil {
			hospitals = []entity.Hospital{*hospital}
		}
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}, nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	decision := authz.Authorize(actor, authz.ActionRead, authz.Resource{
		Kind:       authz.ResourceHospital,
		HospitalID: &hospital.ID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	return converter.HospitalToResponse(hospital), nil
}

// CreateHospital creates a tenant. A non-super_admin creator with no
// hospital gets the new one auto-assigned; an existing assignment is never
// overwritten. An optional nested admin request creates or repurposes a
// hospital_admin login for the new hospital.
func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	decision := authz.Authorize(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResourceHospital})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital := &entity.Hospital{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	if adoptsCreatedHospital(actor) {
		creator, err := u.userRepo.FindByID(tx, actor.ID)
		if err != nil {
			return nil, err
		}
		if creator != nil && creator.HospitalID == nil {
			creator.HospitalID = &hospital.ID
			if err := u.userRepo.Update(tx, creator); err != nil {
				u.log.Warnf("Failed to auto-assign hospital to creator: %+v", err)
				return nil, err
			}
		}
	}

	if req.AdminEmail != "" && req.AdminPassword != "" {
		if err := u.upsertHospitalAdmin(tx, hospital, req); err != nil {
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionHospitalCreate, "hospital", hospital.ID.String(), converter.HospitalToResponse(hospital)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

// adoptsCreatedHospital reports whether the creator gets attached to the
// hospital they just created. super_admin stays global and an existing
// assignment is never overwritten.
func adoptsCreatedHospital(actor authz.Actor) bool {
	return actor.Role != entity.RoleSuperAdmin && actor.HospitalID == nil
}

func (u *hospitalUsecase) upsertHospitalAdmin(tx *gorm.DB, hospital *entity.Hospital, req *dto.CreateHospitalRequest) error {
	email := strings.ToLower(req.AdminEmail)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash admin password: %+v", err)
		return err
	}

	admin, err := u.userRepo.FindByEmail(tx, email)
	if err != nil {
		return err
	}
	if admin != nil {
		admin.Role = entity.RoleHospitalAdmin
		admin.HospitalID = &hospital.ID
		admin.PasswordHash = string(hashedPassword)
		if req.AdminName != "" {
			admin.FullName = req.AdminName
		}
		if req.AdminPhone != "" {
			phone := req.AdminPhone
			admin.Phone = &phone
		}
		return u.userRepo.Update(tx, admin)
	}

	name := req.AdminName
	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	admin = &entity.User{
		FullName:     name,
		Email:        &email,
		Role:         entity.RoleHospitalAdmin,
		HospitalID:   &hospital.ID,
		PasswordHash: string(hashedPassword),
	}
	if req.AdminPhone != "" {
		phone := req.AdminPhone
		admin.Phone = &phone
	}
	if err := u.userRepo.Create(tx, admin); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return ErrPhoneAlreadyExists
		}
		return err
	}
	return nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital %s: %+v", id, err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	decision := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:       authz.ResourceHospital,
		HospitalID: &hospital.ID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	old := converter.HospitalToResponse(hospital)
	if req.Name != "" {
		hospital.Name = req.Name
	}
	if req.Address != "" {
		hospital.Address = req.Address
	}
	if req.Phone != "" {
		hospital.Phone = req.Phone
	}
	if req.Email != "" {
		hospital.Email = req.Email
	}
	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionHospitalUpdate, "hospital", hospital.ID.String(), old, converter.HospitalToResponse(hospital)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return ErrActorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	decision := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:       authz.ResourceHospital,
		HospitalID: &hospital.ID,
	})
	if !decision.Allowed {
		return ErrForbidden
	}

	if _, err := u.hospitalRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete hospital %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionHospitalDelete, "hospital", id.String(), converter.HospitalToResponse(hospital)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// ListStaff returns the doctor/therapist/support roster of a hospital.
func (u *hospitalUsecase) ListStaff(ctx context.Context, hospitalID uuid.UUID) (*dto.StaffListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	decision := authz.Authorize(actor, authz.ActionList, authz.Resource{
		Kind:       authz.ResourceStaff,
		HospitalID: &hospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	staff, err := u.userRepo.FindStaffByHospital(u.db.WithContext(ctx), hospitalID, entity.AssignableStaffRoles)
	if err != nil {
		u.log.Warnf("Failed to list staff for hospital %s: %+v", hospitalID, err)
		return nil, err
	}

	return &dto.StaffListResponse{
		Staff: converter.UsersToResponses(staff),
		Total: len(staff),
	}, nil
}

// AssignStaff creates a staff login inside the hospital from the URL path.
// The hospital is always stamped from the path parameter.
func (u *hospitalUsecase) AssignStaff(ctx context.Context, hospitalID uuid.UUID, req *dto.AssignStaffRequest) (*dto.UserResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	decision := authz.Authorize(actor, authz.ActionCreate, authz.Resource{
		Kind:       authz.ResourceStaff,
		HospitalID: &hospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	role := entity.Role(req.Role)
	if !role.IsAssignableStaffRole() {
		return nil, ErrInvalidStaffRole
	}
	if req.Email == "" && req.Username == "" {
		return nil, ErrStaffHandleMissing
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

	// Best-effort pre-checks; the unique indexes are the real guard.
	if err := u.checkStaffConflicts(tx, req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	staff := newStaffUser(req, hospital.ID, string(hashedPassword))

	if err := u.userRepo.Create(tx, staff); err != nil {
		switch {
		case isDuplicateKeyError(err, "email"):
			return nil, ErrEmailAlreadyExists
		case isDuplicateKeyError(err, "phone"):
			return nil, ErrPhoneAlreadyExists
		case isDuplicateKeyError(err, "username"):
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create staff user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionStaffAssign, "user", staff.ID.String(), converter.UserToResponse(staff)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(staff), nil
}

// newStaffUser builds the staff login record. The hospital assignment
// always comes from the URL path, never from the request body.
func newStaffUser(req *dto.AssignStaffRequest, hospitalID uuid.UUID, passwordHash string) *entity.User {
	staff := &entity.User{
		FullName:     req.FullName,
		Role:         entity.Role(req.Role),
		HospitalID:   &hospitalID,
		PasswordHash: passwordHash,
		Department:   req.Department,
	}
	if req.Email != "" {
		email := strings.ToLower(req.Email)
		staff.Email = &email
	}
	if req.Phone != "" {
		phone := req.Phone
		staff.Phone = &phone
	}
	if req.Username != "" {
		username := strings.ToLower(req.Username)
		staff.Username = &username
	}
	return staff
}

func (u *hospitalUsecase) checkStaffConflicts(tx *gorm.DB, req *dto.AssignStaffRequest) error {
	if req.Email != "" {
		existing, err := u.userRepo.FindByEmail(tx, strings.ToLower(req.Email))
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailAlreadyExists
		}
	}
	if req.Phone != "" {
		existing, err := u.userRepo.FindByPhone(tx, req.Phone)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrPhoneAlreadyExists
		}
	}
	if req.Username != "" {
		existing, err := u.userRepo.FindByUsername(tx, strings.ToLower(req.Username))
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUsernameAlreadyExists
		}
	}
	return nil
}

// RemoveStaff deletes a staff login. Only doctor/therapist/support members
// of the stated hospital can be removed through this endpoint.
func (u *hospitalUsecase) RemoveStaff(ctx context.Context, hospitalID, userID uuid.UUID) error {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return ErrActorNotFound
	}

	decision := authz.Authorize(actor, authz.ActionDelete, authz.Resource{
		Kind:       authz.ResourceStaff,
		HospitalID: &hospitalID,
	})
	if !decision.Allowed {
		return ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}
	if !staff.Role.IsAssignableStaffRole() {
		return ErrInvalidStaffRole
	}
	if staff.HospitalID == nil || *staff.HospitalID != hospitalID {
		return ErrStaffNotInHospital
	}

	if err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to remove staff %s: %+v", userID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actor.ID, entity.AuditActionStaffRemove, "user", userID.String(), converter.UserToResponse(staff)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
