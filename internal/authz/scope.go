package authz

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// ScopeKind discriminates the Scope variant.
type ScopeKind string

const (
	// ScopeGlobal grants access to every tenant's records.
	ScopeGlobal ScopeKind = "global"
	// ScopeTenant restricts access to records of one hospital.
	ScopeTenant ScopeKind = "tenant"
	// ScopeSelf restricts access to the actor's own records.
	ScopeSelf ScopeKind = "self"
	// ScopeEmpty means no accessible resources. A tenant-scoped role with
	// no hospital assignment resolves here; callers must treat it as an
	// empty result set, not as an error.
	ScopeEmpty ScopeKind = "empty"
)

// Scope is the computed set of records an actor may act upon.
type Scope struct {
	Kind       ScopeKind
	HospitalID uuid.UUID
	UserID     uuid.UUID
}

// ResolveScope computes the actor's tenant context. There are no error
// conditions: a tenant role with no hospital yields ScopeEmpty.
func ResolveScope(actor Actor) Scope {
	switch actor.Role {
	case entity.RoleSuperAdmin:
		return Scope{Kind: ScopeGlobal}
	case entity.RoleAdmin, entity.RoleHospitalAdmin,
		entity.RoleDoctor, entity.RoleTherapist, entity.RoleSupport:
		return tenantScope(actor)
	default: // patient, guardian
		return Scope{Kind: ScopeSelf, UserID: actor.ID}
	}
}

func tenantScope(actor Actor) Scope {
	if actor.HospitalID == nil {
		return Scope{Kind: ScopeEmpty}
	}
	return Scope{Kind: ScopeTenant, HospitalID: *actor.HospitalID}
}

// ListScope refines ResolveScope per resource kind for list operations.
// The hospital directory is readable by every role so patients can pick a
// hospital when booking, while a hospital_admin only sees their own; the
// staff roster of any hospital is likewise browsable by non-admin roles.
func ListScope(actor Actor, kind ResourceKind) Scope {
	switch kind {
	case ResourceHospital, ResourceStaff:
		if actor.Role == entity.RoleHospitalAdmin {
			return ResolveScope(actor)
		}
		return Scope{Kind: ScopeGlobal}

	case ResourcePatient:
		if actor.Role == entity.RoleSuperAdmin {
			return Scope{Kind: ScopeGlobal}
		}
		return tenantScope(actor)

	case ResourcePrescription:
		// Tenant isolation holds even for super_admin.
		return tenantScope(actor)

	case ResourceAppointment, ResourceNotification:
		return Scope{Kind: ScopeSelf, UserID: actor.ID}
	}
	return Scope{Kind: ScopeEmpty}
}
