package authz

import (
	"testing"

	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeHospitalManagement(t *testing.T) {
	hospitalA := uuid.New()
	hospitalB := uuid.New()

	admin := Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	hospitalAdmin := Actor{ID: uuid.New(), Role: entity.RoleHospitalAdmin, HospitalID: &hospitalA}
	patient := Actor{ID: uuid.New(), Role: entity.RolePatient}

	assert.True(t, Authorize(admin, ActionUpdate, Resource{Kind: ResourceHospital, HospitalID: &hospitalB}).Allowed)
	assert.True(t, Authorize(hospitalAdmin, ActionUpdate, Resource{Kind: ResourceHospital, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(hospitalAdmin, ActionUpdate, Resource{Kind: ResourceHospital, HospitalID: &hospitalB}).Allowed)
	assert.False(t, Authorize(patient, ActionUpdate, Resource{Kind: ResourceHospital, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(patient, ActionDelete, Resource{Kind: ResourceHospital, HospitalID: &hospitalA}).Allowed)

	// Reading the directory is open to everyone.
	assert.True(t, Authorize(patient, ActionRead, Resource{Kind: ResourceHospital, HospitalID: &hospitalA}).Allowed)
}

func TestAuthorizeStaffRoster(t *testing.T) {
	hospitalA := uuid.New()
	hospitalB := uuid.New()

	superAdmin := Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	hospitalAdmin := Actor{ID: uuid.New(), Role: entity.RoleHospitalAdmin, HospitalID: &hospitalA}
	doctor := Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &hospitalA}

	assert.True(t, Authorize(superAdmin, ActionCreate, Resource{Kind: ResourceStaff, HospitalID: &hospitalB}).Allowed)
	assert.True(t, Authorize(hospitalAdmin, ActionCreate, Resource{Kind: ResourceStaff, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(hospitalAdmin, ActionCreate, Resource{Kind: ResourceStaff, HospitalID: &hospitalB}).Allowed)
	assert.False(t, Authorize(doctor, ActionCreate, Resource{Kind: ResourceStaff, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(doctor, ActionDelete, Resource{Kind: ResourceStaff, HospitalID: &hospitalA}).Allowed)
}

func TestAuthorizePatientTenancy(t *testing.T) {
	hospitalA := uuid.New()
	hospitalB := uuid.New()

	doctorA := Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &hospitalA}
	adminNoHospital := Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	superAdmin := Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin}

	assert.True(t, Authorize(doctorA, ActionRead, Resource{Kind: ResourcePatient, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(doctorA, ActionRead, Resource{Kind: ResourcePatient, HospitalID: &hospitalB}).Allowed)

	// admin without an affiliation reaches nothing tenant scoped.
	assert.False(t, Authorize(adminNoHospital, ActionRead, Resource{Kind: ResourcePatient, HospitalID: &hospitalA}).Allowed)

	// super_admin crosses tenants on patient records.
	assert.True(t, Authorize(superAdmin, ActionDelete, Resource{Kind: ResourcePatient, HospitalID: &hospitalB}).Allowed)
}

func TestAuthorizeAppointmentTransitions(t *testing.T) {
	hospitalA := uuid.New()
	ownerID := uuid.New()

	owner := Actor{ID: ownerID, Role: entity.RolePatient}
	otherPatient := Actor{ID: uuid.New(), Role: entity.RolePatient}
	hospitalAdmin := Actor{ID: uuid.New(), Role: entity.RoleHospitalAdmin, HospitalID: &hospitalA}
	doctor := Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &hospitalA}

	res := Resource{Kind: ResourceAppointment, HospitalID: &hospitalA, OwnerID: &ownerID}

	assert.True(t, Authorize(owner, ActionUpdate, res).Allowed)
	assert.False(t, Authorize(otherPatient, ActionUpdate, res).Allowed)
	assert.True(t, Authorize(hospitalAdmin, ActionUpdate, res).Allowed)

	// Staff members do not manage other people's appointments.
	assert.False(t, Authorize(doctor, ActionUpdate, res).Allowed)

	// Booking is open to any signed-in user.
	assert.True(t, Authorize(otherPatient, ActionCreate, Resource{Kind: ResourceAppointment, HospitalID: &hospitalA}).Allowed)
}

func TestAuthorizePrescriptionsTenantScoped(t *testing.T) {
	hospitalA := uuid.New()
	hospitalB := uuid.New()

	doctorA := Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &hospitalA}
	superAdmin := Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin}

	assert.True(t, Authorize(doctorA, ActionDelete, Resource{Kind: ResourcePrescription, HospitalID: &hospitalA}).Allowed)
	assert.False(t, Authorize(doctorA, ActionDelete, Resource{Kind: ResourcePrescription, HospitalID: &hospitalB}).Allowed)

	// No super_admin override on prescriptions.
	assert.False(t, Authorize(superAdmin, ActionDelete, Resource{Kind: ResourcePrescription, HospitalID: &hospitalA}).Allowed)
}

func TestAuthorizeNotificationsOwnerOnly(t *testing.T) {
	ownerID := uuid.New()

	owner := Actor{ID: ownerID, Role: entity.RoleGuardian}
	superAdmin := Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin}

	res := Resource{Kind: ResourceNotification, OwnerID: &ownerID}
	assert.True(t, Authorize(owner, ActionUpdate, res).Allowed)
	assert.False(t, Authorize(superAdmin, ActionUpdate, res).Allowed)
}

func TestAuthorizeDeniesMissingContext(t *testing.T) {
	hospitalA := uuid.New()
	doctor := Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &hospitalA}

	// Tenant rule without a resource hospital denies.
	decision := Authorize(doctor, ActionRead, Resource{Kind: ResourcePatient})
	assert.False(t, decision.Allowed)
	assert.NotEmpty(t, decision.Reason)

	// Owner rule without an owner denies.
	decision = Authorize(doctor, ActionUpdate, Resource{Kind: ResourceAppointment, HospitalID: &hospitalA})
	assert.False(t, decision.Allowed)
}
