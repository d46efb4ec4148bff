// Package authz holds the tenancy scope resolver and the access policy
// evaluator. Every usecase delegates its allow/deny decisions here; no
// handler or usecase encodes role predicates inline.
package authz

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// Action is a policy-relevant operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ResourceKind identifies the resource type a policy rule applies to.
type ResourceKind string

const (
	ResourceHospital     ResourceKind = "hospital"
	ResourceStaff        ResourceKind = "staff"
	ResourcePatient      ResourceKind = "patient"
	ResourceAppointment  ResourceKind = "appointment"
	ResourcePrescription ResourceKind = "prescription"
	ResourceNotification ResourceKind = "notification"
)

// Resource describes the target of an authorization check. HospitalID is
// the tenant the record belongs to, OwnerID the user the record belongs to
// (appointment patient, notification recipient). Either may be nil when the
// check does not involve an existing record.
type Resource struct {
	Kind       ResourceKind
	HospitalID *uuid.UUID
	OwnerID    *uuid.UUID
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny is the negative decision with a caller-facing reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// effect is what a matched policy rule grants.
type effect int

const (
	deny effect = iota
	// allowAny grants the action on every record of the kind.
	allowAny
	// allowSameTenant grants the action only when the actor's hospital
	// matches the resource's hospital.
	allowSameTenant
	// allowOwner grants the action only on the actor's own records.
	allowOwner
)

type policyKey struct {
	kind   ResourceKind
	action Action
	role   entity.Role
}

var allRoles = []entity.Role{
	entity.RolePatient, entity.RoleGuardian, entity.RoleDoctor,
	entity.RoleTherapist, entity.RoleSupport, entity.RoleHospitalAdmin,
	entity.RoleAdmin, entity.RoleSuperAdmin,
}

// policyTable is the declarative ruleset keyed by (resource, action, role).
// Anything not in the table is denied. More specific roles are entered
// explicitly so the table can be audited against the product rules without
// reading any handler code.
var policyTable = buildPolicyTable()

func buildPolicyTable() map[policyKey]effect {
	t := map[policyKey]effect{}
	grant := func(kind ResourceKind, action Action, eff effect, roles ...entity.Role) {
		for _, role := range roles {
			t[policyKey{kind, action, role}] = eff
		}
	}
	elevated := []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}

	// Hospital: elevated roles manage any hospital, a hospital_admin only
	// their own. Every role may read hospitals so the booking flow can list
	// them. A hospital_admin's read is limited to their own hospital.
	grant(ResourceHospital, ActionCreate, allowAny, entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleHospitalAdmin)
	grant(ResourceHospital, ActionRead, allowAny, allRoles...)
	grant(ResourceHospital, ActionRead, allowSameTenant, entity.RoleHospitalAdmin)
	grant(ResourceHospital, ActionList, allowAny, allRoles...)
	grant(ResourceHospital, ActionUpdate, allowAny, elevated...)
	grant(ResourceHospital, ActionUpdate, allowSameTenant, entity.RoleHospitalAdmin)
	grant(ResourceHospital, ActionDelete, allowAny, elevated...)
	grant(ResourceHospital, ActionDelete, allowSameTenant, entity.RoleHospitalAdmin)

	// Staff roster: elevated roles manage any hospital's roster, a
	// hospital_admin only their own. Listing is open to the other roles so
	// patients can browse doctors/therapists when booking.
	grant(ResourceStaff, ActionList, allowAny, allRoles...)
	grant(ResourceStaff, ActionList, allowSameTenant, entity.RoleHospitalAdmin)
	grant(ResourceStaff, ActionCreate, allowAny, elevated...)
	grant(ResourceStaff, ActionCreate, allowSameTenant, entity.RoleHospitalAdmin)
	grant(ResourceStaff, ActionDelete, allowAny, elevated...)
	grant(ResourceStaff, ActionDelete, allowSameTenant, entity.RoleHospitalAdmin)

	// Patient records: super_admin unrestricted, everyone else strictly
	// within their own hospital.
	for _, action := range []Action{ActionCreate, ActionRead, ActionList, ActionUpdate, ActionDelete} {
		grant(ResourcePatient, action, allowSameTenant, allRoles...)
		grant(ResourcePatient, action, allowAny, entity.RoleSuperAdmin)
	}

	// Appointments: any authenticated user may book; cancel/reschedule is
	// the owning patient or an admin-tier role; "mine" listings are always
	// owner-scoped.
	grant(ResourceAppointment, ActionCreate, allowAny, allRoles...)
	grant(ResourceAppointment, ActionList, allowOwner, allRoles...)
	grant(ResourceAppointment, ActionRead, allowOwner, allRoles...)
	grant(ResourceAppointment, ActionRead, allowAny, entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleHospitalAdmin)
	grant(ResourceAppointment, ActionUpdate, allowOwner, allRoles...)
	grant(ResourceAppointment, ActionUpdate, allowAny, entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleHospitalAdmin)

	// Prescriptions: creation by any authenticated actor (the author is
	// recorded as the doctor); visibility and deletion stay tenant-scoped
	// for every role, including super_admin.
	grant(ResourcePrescription, ActionCreate, allowAny, allRoles...)
	grant(ResourcePrescription, ActionList, allowSameTenant, allRoles...)
	grant(ResourcePrescription, ActionRead, allowSameTenant, allRoles...)
	grant(ResourcePrescription, ActionDelete, allowSameTenant, allRoles...)

	// Notifications: strictly the recipient's own.
	grant(ResourceNotification, ActionList, allowOwner, allRoles...)
	grant(ResourceNotification, ActionUpdate, allowOwner, allRoles...)

	return t
}

// Authorize evaluates the policy table for (actor role, action, resource).
// It is a pure function: all record context arrives in res.
func Authorize(actor Actor, action Action, res Resource) Decision {
	eff, ok := policyTable[policyKey{res.Kind, action, actor.Role}]
	if !ok {
		return Deny("role not permitted for this action")
	}

	switch eff {
	case allowAny:
		return Allow()
	case allowSameTenant:
		if res.HospitalID == nil {
			return Deny("resource has no hospital")
		}
		if !actor.SameTenant(*res.HospitalID) {
			return Deny("not in this hospital")
		}
		return Allow()
	case allowOwner:
		if res.OwnerID == nil || *res.OwnerID != actor.ID {
			return Deny("not the owner")
		}
		return Allow()
	}
	return Deny("role not permitted for this action")
}
