package converter

import (
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Address:   hospital.Address,
		Phone:     hospital.Phone,
		Email:     hospital.Email,
		CreatedAt: hospital.CreatedAt,
		UpdatedAt: hospital.UpdatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
