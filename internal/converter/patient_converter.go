package converter

import (
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := dto.PatientResponse{
		ID:         patient.ID,
		HospitalID: patient.HospitalID,
		UserID:     patient.UserID,
		FullName:   patient.FullName,
		Gender:     patient.Gender,
		Phone:      patient.Phone,
		Address:    patient.Address,
		Notes:      patient.Notes,
		Guardians:  UsersToResponses(patient.Guardians),
		CreatedAt:  patient.CreatedAt,
		UpdatedAt:  patient.UpdatedAt,
	}
	if patient.DateOfBirth != nil {
		resp.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}
	if len(patient.Guardians) == 0 {
		resp.Guardians = nil
	}
	return &resp
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
