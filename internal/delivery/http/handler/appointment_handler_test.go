package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/usecase"
	"hospital-admin-platform/pkg/response"
	"hospital-admin-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentUsecase struct {
	createErr     error
	transitionErr error
	appointment   *dto.AppointmentResponse
	list          *dto.AppointmentListResponse
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.appointment, nil
}

func (s *stubAppointmentUsecase) ListMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.list, nil
}

func (s *stubAppointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return s.appointment, nil
}

func (s *stubAppointmentUsecase) RescheduleAppointment(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return s.appointment, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func validCreateAppointmentBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	start := time.Now().Add(24 * time.Hour)
	body, err := json.Marshal(dto.CreateAppointmentRequest{
		HospitalID: uuid.New(),
		StaffID:    uuid.New(),
		Type:       "doctor",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateAppointmentSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{appointment: &dto.AppointmentResponse{ID: uuid.New(), Status: "pending"}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", validCreateAppointmentBody(t))
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestCreateAppointmentErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"hospital missing", usecase.ErrHospitalNotFound, http.StatusNotFound},
		{"staff missing", usecase.ErrStaffNotFound, http.StatusNotFound},
		{"staff not bookable", usecase.ErrStaffNotBookable, http.StatusBadRequest},
		{"staff in other hospital", usecase.ErrStaffHospitalMismatch, http.StatusBadRequest},
		{"type mismatch", usecase.ErrAppointmentTypeInvalid, http.StatusBadRequest},
		{"bad time range", usecase.ErrInvalidTimeRange, http.StatusBadRequest},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{createErr: tt.err}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", validCreateAppointmentBody(t))
			rec := httptest.NewRecorder()
			h.CreateAppointment(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.False(t, decodeResponse(t, rec).Success)
		})
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	body, _ := json.Marshal(map[string]string{"type": "surgeon"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelAppointmentErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"terminal", usecase.ErrAppointmentTerminal, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointmentUsecase{transitionErr: tt.err}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+uuid.NewString()+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.CancelAppointment(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestCancelAppointmentInvalidID(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/not-a-uuid/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.CancelAppointment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRescheduleAppointmentSuccess(t *testing.T) {
	stub := &stubAppointmentUsecase{appointment: &dto.AppointmentResponse{ID: uuid.New(), Status: "pending"}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	start := time.Now().Add(72 * time.Hour)
	body, err := json.Marshal(dto.RescheduleAppointmentRequest{StartTime: start, EndTime: start.Add(time.Hour)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+uuid.NewString()+"/reschedule", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.RescheduleAppointment(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListMyAppointments(t *testing.T) {
	stub := &stubAppointmentUsecase{list: &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/mine", nil)
	rec := httptest.NewRecorder()
	h.ListMyAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}
