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

type stubPatientUsecase struct {
	err     error
	patient *dto.PatientResponse
}

func (s *stubPatientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.PatientListResponse{Patients: []dto.PatientResponse{}}, nil
}

func (s *stubPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.patient, nil
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.patient, nil
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.patient, nil
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestCreatePatientErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"super_admin without hospital_id", usecase.ErrHospitalIDRequired, http.StatusBadRequest},
		{"no affiliation", usecase.ErrNoHospitalAffiliation, http.StatusForbidden},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"hospital missing", usecase.ErrHospitalNotFound, http.StatusNotFound},
		{"bad date", usecase.ErrInvalidDateOfBirth, http.StatusBadRequest},
		{"guardian missing", usecase.ErrGuardianNotFound, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPatientHandler(&stubPatientUsecase{err: tt.err}, validator.NewValidator())

			body, err := json.Marshal(dto.CreatePatientRequest{FullName: "Jane Doe"})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()
			h.CreatePatient(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUpdatePatientHospitalChangeRejected(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{err: usecase.ErrHospitalChangeNotAllowed}, validator.NewValidator())

	hospitalID := uuid.New()
	body, err := json.Marshal(dto.UpdatePatientRequest{HospitalID: &hospitalID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/patients/"+uuid.NewString(), bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.UpdatePatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPatientNotFound(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{err: usecase.ErrPatientNotFound}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.GetPatient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePatientSuccess(t *testing.T) {
	stub := &stubPatientUsecase{patient: &dto.PatientResponse{ID: uuid.New(), FullName: "Jane Doe"}}
	h := NewPatientHandler(stub, validator.NewValidator())

	body, err := json.Marshal(dto.CreatePatientRequest{FullName: "Jane Doe", Gender: "F"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.CreatePatient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}
