package handler

import (
	"encoding/json"
	"net/http"

	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/usecase"
	"hospital-admin-platform/pkg/response"
	"hospital-admin-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		case usecase.ErrPhoneAlreadyExists:
			response.Conflict(w, "Phone already exists")
		default:
			response.InternalServerError(w, "Failed to create hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), hospitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	if err := h.hospitalUsecase.DeleteHospital(r.Context(), hospitalID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}

func (h *HospitalHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	staff, err := h.hospitalUsecase.ListStaff(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		default:
			response.InternalServerError(w, "Failed to list staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *HospitalHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.hospitalUsecase.AssignStaff(r.Context(), hospitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		case usecase.ErrInvalidStaffRole, usecase.ErrStaffHandleMissing:
			response.BadRequest(w, err.Error())
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists")
		case usecase.ErrPhoneAlreadyExists:
			response.Conflict(w, "Phone already exists")
		case usecase.ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already taken")
		default:
			response.InternalServerError(w, "Failed to assign staff")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Staff assigned successfully", staff)
}

func (h *HospitalHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}
	userID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.hospitalUsecase.RemoveStaff(r.Context(), hospitalID, userID); err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff user not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Access denied")
		case usecase.ErrInvalidStaffRole, usecase.ErrStaffNotInHospital:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to remove staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff removed successfully", nil)
}
