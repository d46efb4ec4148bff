package authz

import (
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity a request acts as. It is built by the
// auth middleware from the verified token plus a fresh user load, so the
// hospital affiliation reflects mid-session reassignments.
type Actor struct {
	ID         uuid.UUID
	Role       entity.Role
	HospitalID *uuid.UUID
}

// ActorFromUser derives the authorization identity from a user record.
func ActorFromUser(user *entity.User) Actor {
	return Actor{
		ID:         user.ID,
		Role:       user.Role,
		HospitalID: user.HospitalID,
	}
}

// SameTenant reports whether the actor is affiliated with the given hospital.
func (a Actor) SameTenant(hospitalID uuid.UUID) bool {
	return a.HospitalID != nil && *a.HospitalID == hospitalID
}
