package usecase

import (
	"context"
	"errors"

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
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentTerminal    = errors.New("appointment already completed or cancelled")
	ErrStaffNotBookable       = errors.New("staff member cannot take appointments")
	ErrStaffHospitalMismatch  = errors.New("staff does not belong to this hospital")
	ErrAppointmentTypeInvalid = errors.New("appointment type does not match staff role")
	ErrInvalidTimeRange       = errors.New("end_time must be after start_time")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	appointmentRepo     repository.AppointmentRepository
	hospitalRepo        repository.HospitalRepository
	userRepo            repository.UserRepository
	notificationService service.NotificationService
	auditService        service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	hospitalRepo repository.HospitalRepository,
	userRepo repository.UserRepository,
	notificationService service.NotificationService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                  db,
		log:                 log,
		appointmentRepo:     appointmentRepo,
		hospitalRepo:        hospitalRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		auditService:        auditService,
	}
}

// CreateAppointment books a slot with a doctor or therapist. The hospital
// and the staff member must both exist, the staff member must hold a
// bookable role and belong to the stated hospital. A staff or admin caller
// may book on behalf of another user via patient_id.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	decision := authz.Authorize(actor, authz.ActionCreate, authz.Resource{
		Kind:       authz.ResourceAppointment,
		HospitalID: &req.HospitalID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	patientID := actor.ID
	if req.PatientID != nil && (actor.Role.IsStaff() || actor.Role.IsElevated()) {
		patientID = *req.PatientID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	staff, err := u.userRepo.FindByID(tx, req.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	if staff.Role != entity.RoleDoctor && staff.Role != entity.RoleTherapist {
		return nil, ErrStaffNotBookable
	}
	if staff.HospitalID == nil || *staff.HospitalID != hospital.ID {
		return nil, ErrStaffHospitalMismatch
	}
	if string(staff.Role) != req.Type {
		return nil, ErrAppointmentTypeInvalid
	}

	if patientID != actor.ID {
		patient, err := u.userRepo.FindByID(tx, patientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrUserNotFound
		}
	}

	appointment := &entity.Appointment{
		HospitalID: hospital.ID,
		PatientID:  patientID,
		StaffID:    staff.ID,
		Type:       entity.AppointmentType(req.Type),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     entity.AppointmentStatusPending,
		Notes:      req.Notes,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	appointment.Staff = staff

	if err := u.notificationService.NotifyAppointmentCreated(tx, appointment); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.ID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// ListMyAppointments returns the caller's own bookings, regardless of role.
func (u *appointmentUsecase) ListMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), actor.ID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, entity.AuditActionAppointmentCancel, func(a *entity.Appointment) bool {
		return a.Cancel()
	}, func(tx *gorm.DB, a *entity.Appointment) error {
		return u.notificationService.NotifyAppointmentCancelled(tx, a)
	})
}

func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	return u.transition(ctx, id, entity.AuditActionAppointmentReslot, func(a *entity.Appointment) bool {
		return a.Reschedule(req.StartTime, req.EndTime)
	}, func(tx *gorm.DB, a *entity.Appointment) error {
		return u.notificationService.NotifyAppointmentRescheduled(tx, a)
	})
}

// transition applies a state change to an appointment owned by the caller
// or reachable by an admin-tier role, then fans out notifications and the
// audit entry in the same transaction.
func (u *appointmentUsecase) transition(
	ctx context.Context,
	id uuid.UUID,
	auditAction string,
	apply func(*entity.Appointment) bool,
	notify func(*gorm.DB, *entity.Appointment) error,
) (*dto.AppointmentResponse, error) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		return nil, ErrActorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	decision := authz.Authorize(actor, authz.ActionUpdate, authz.Resource{
		Kind:       authz.ResourceAppointment,
		HospitalID: &appointment.HospitalID,
		OwnerID:    &appointment.PatientID,
	})
	if !decision.Allowed {
		return nil, ErrForbidden
	}

	old := converter.AppointmentToResponse(appointment)
	if !apply(appointment) {
		return nil, ErrAppointmentTerminal
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	if err := notify(tx, appointment); err != nil {
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actor.ID, auditAction, "appointment", appointment.ID.String(), old, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
