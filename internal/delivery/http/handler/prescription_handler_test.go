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

type stubPrescriptionUsecase struct {
	err          error
	prescription *dto.PrescriptionResponse
}

func (s *stubPrescriptionUsecase) ListPrescriptions(ctx context.Context, patientID *uuid.UUID) (*dto.PrescriptionListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.PrescriptionListResponse{Prescriptions: []dto.PrescriptionResponse{}}, nil
}

func (s *stubPrescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.prescription, nil
}

func (s *stubPrescriptionUsecase) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestCreatePrescriptionErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"no hospital affiliation", usecase.ErrNoHospitalAffiliation, http.StatusForbidden},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"invalid date", usecase.ErrInvalidDate, http.StatusBadRequest},
		{"patient missing", usecase.ErrPatientNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPrescriptionHandler(&stubPrescriptionUsecase{err: tt.err}, validator.NewValidator())

			body, err := json.Marshal(dto.CreatePrescriptionRequest{PatientID: uuid.New()})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()
			h.CreatePrescription(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeletePrescriptionNotFound(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{err: usecase.ErrPrescriptionNotFound}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/prescriptions/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.DeletePrescription(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPrescriptionsRejectsBadPatientFilter(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prescriptions?patient_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.ListPrescriptions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
