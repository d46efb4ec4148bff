package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-platform/internal/authz"
	"hospital-admin-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithActor(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil)
	actor := authz.Actor{ID: uuid.New(), Role: role}
	return req.WithContext(context.WithValue(req.Context(), ActorKey, actor))
}

func TestRequireElevated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		role     entity.Role
		wantCode int
	}{
		{entity.RoleSuperAdmin, http.StatusOK},
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleHospitalAdmin, http.StatusForbidden},
		{entity.RoleDoctor, http.StatusForbidden},
		{entity.RolePatient, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireElevated(next).ServeHTTP(rec, requestWithActor(tt.role))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireRoleWithoutActor(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil)
	rec := httptest.NewRecorder()
	RequireRole(entity.RoleAdmin)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleCustomSet(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireRole(entity.RoleDoctor, entity.RoleTherapist)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithActor(entity.RoleTherapist))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithActor(entity.RoleSupport))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
