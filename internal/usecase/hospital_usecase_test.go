package usecase

import (
	"testing"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdoptsCreatedHospital(t *testing.T) {
	hospitalID := uuid.New()

	tests := []struct {
		name     string
		actor    authz.Actor
		expected bool
	}{
		{
			name:     "unaffiliated admin adopts the new hospital",
			actor:    authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
			expected: true,
		},
		{
			name:     "unaffiliated hospital_admin adopts the new hospital",
			actor:    authz.Actor{ID: uuid.New(), Role: entity.RoleHospitalAdmin},
			expected: true,
		},
		{
			name:     "super_admin never adopts",
			actor:    authz.Actor{ID: uuid.New(), Role: entity.RoleSuperAdmin},
			expected: false,
		},
		{
			name:     "an existing assignment is never overwritten",
			actor:    authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin, HospitalID: &hospitalID},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adoptsCreatedHospital(tt.actor))
		})
	}
}

func TestNewStaffUser(t *testing.T) {
	pathHospital := uuid.New()

	t.Run("hospital comes from the path parameter", func(t *testing.T) {
		staff := newStaffUser(&dto.AssignStaffRequest{
			FullName:   "Dr. Siti Rahma",
			Email:      "Siti.Rahma@Example.com",
			Username:   "SitiRahma",
			Phone:      "081234567890",
			Password:   "plaintext",
			Role:       "doctor",
			Department: "Cardiology",
		}, pathHospital, "hashed-password")

		require.NotNil(t, staff.HospitalID)
		assert.Equal(t, pathHospital, *staff.HospitalID)
		assert.Equal(t, entity.RoleDoctor, staff.Role)
		assert.Equal(t, "hashed-password", staff.PasswordHash)
		assert.Equal(t, "Cardiology", staff.Department)
		require.NotNil(t, staff.Email)
		assert.Equal(t, "siti.rahma@example.com", *staff.Email)
		require.NotNil(t, staff.Username)
		assert.Equal(t, "sitirahma", *staff.Username)
		require.NotNil(t, staff.Phone)
		assert.Equal(t, "081234567890", *staff.Phone)
	})

	t.Run("empty optional handles stay nil", func(t *testing.T) {
		staff := newStaffUser(&dto.AssignStaffRequest{
			FullName: "Budi Santoso",
			Username: "budi",
			Password: "plaintext",
			Role:     "support",
		}, pathHospital, "hashed-password")

		assert.Nil(t, staff.Email)
		assert.Nil(t, staff.Phone)
		require.NotNil(t, staff.Username)
		assert.Equal(t, "budi", *staff.Username)
	})
}
