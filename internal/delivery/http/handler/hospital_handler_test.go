package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/usecase"
	"hospital-admin-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHospitalUsecase struct {
	err      error
	hospital *dto.HospitalResponse
	staff    *dto.UserResponse
}

func (s *stubHospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.HospitalListResponse{Hospitals: []dto.HospitalResponse{}}, nil
}

func (s *stubHospitalUsecase) GetHospital(ctx context.Context, id uuid.UUID) (*dto.HospitalResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hospital, nil
}

func (s *stubHospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hospital, nil
}

func (s *stubHospitalUsecase) UpdateHospital(ctx context.Context, id uuid.UUID, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hospital, nil
}

func (s *stubHospitalUsecase) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func (s *stubHospitalUsecase) ListStaff(ctx context.Context, hospitalID uuid.UUID) (*dto.StaffListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.StaffListResponse{Staff: []dto.UserResponse{}}, nil
}

func (s *stubHospitalUsecase) AssignStaff(ctx context.Context, hospitalID uuid.UUID, req *dto.AssignStaffRequest) (*dto.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.staff, nil
}

func (s *stubHospitalUsecase) RemoveStaff(ctx context.Context, hospitalID, userID uuid.UUID) error {
	return s.err
}

func TestGetHospitalErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", usecase.ErrHospitalNotFound, http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHospitalHandler(&stubHospitalUsecase{err: tt.err}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/hospitals/"+uuid.NewString(), nil)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.GetHospital(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCreateHospitalSuccess(t *testing.T) {
	stub := &stubHospitalUsecase{hospital: &dto.HospitalResponse{ID: uuid.New(), Name: "General Hospital"}}
	h := NewHospitalHandler(stub, validator.NewValidator())

	body, err := json.Marshal(dto.CreateHospitalRequest{Name: "General Hospital", Address: "1 Main St"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.CreateHospital(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestCreateHospitalValidation(t *testing.T) {
	h := NewHospitalHandler(&stubHospitalUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(map[string]string{"address": "no name"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.CreateHospital(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignStaffErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"hospital missing", usecase.ErrHospitalNotFound, http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"handle missing", usecase.ErrStaffHandleMissing, http.StatusBadRequest},
		{"email conflict", usecase.ErrEmailAlreadyExists, http.StatusConflict},
		{"username conflict", usecase.ErrUsernameAlreadyExists, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHospitalHandler(&stubHospitalUsecase{err: tt.err}, validator.NewValidator())

			body, err := json.Marshal(dto.AssignStaffRequest{
				FullName: "Dr. Example",
				Email:    "doc@example.com",
				Password: "secret123",
				Role:     "doctor",
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals/"+uuid.NewString()+"/staff", bytes.NewBuffer(body))
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.AssignStaff(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAssignStaffRejectsUnknownRole(t *testing.T) {
	h := NewHospitalHandler(&stubHospitalUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(dto.AssignStaffRequest{
		FullName: "Dr. Example",
		Email:    "doc@example.com",
		Password: "secret123",
		Role:     "hospital_admin",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospitals/"+uuid.NewString()+"/staff", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.AssignStaff(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveStaffErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", usecase.ErrStaffNotFound, http.StatusNotFound},
		{"wrong hospital", usecase.ErrStaffNotInHospital, http.StatusBadRequest},
		{"role not removable", usecase.ErrInvalidStaffRole, http.StatusBadRequest},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHospitalHandler(&stubHospitalUsecase{err: tt.err}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/hospitals/x/staff/y", nil)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString(), "userId": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.RemoveStaff(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeleteHospitalSuccess(t *testing.T) {
	h := NewHospitalHandler(&stubHospitalUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/hospitals/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.DeleteHospital(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
