package usecase

import (
	"testing"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePatientHospital(t *testing.T) {
	ownHospital := uuid.New()
	otherHospital := uuid.New()

	tests := []struct {
		name      string
		actor     authz.Actor
		requested *uuid.UUID
		expected  uuid.UUID
		err       error
	}{
		{
			name:      "super_admin uses the requested hospital",
			actor:     authz.Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin},
			requested: &otherHospital,
			expected:  otherHospital,
		},
		{
			name:  "super_admin without a requested hospital is rejected",
			actor: authz.Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin},
			err:   ErrHospitalIDRequired,
		},
		{
			name:      "hospital_admin requesting another hospital still gets their own",
			actor:     authz.Actor{ID: uuid.New(), Role: entity.RoleHospitalAdmin, HospitalID: &ownHospital},
			requested: &otherHospital,
			expected:  ownHospital,
		},
		{
			name:     "doctor is stamped with their own hospital",
			actor:    authz.Actor{ID: uuid.New(), Role: entity.RoleDoctor, HospitalID: &ownHospital},
			expected: ownHospital,
		},
		{
			name:      "admin without affiliation is rejected",
			actor:     authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
			requested: &otherHospital,
			err:       ErrNoHospitalAffiliation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hospitalID, err := resolvePatientHospital(tt.actor, tt.requested)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hospitalID)
		})
	}
}
