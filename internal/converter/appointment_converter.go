package converter

import (
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := dto.AppointmentResponse{
		ID:         appointment.ID,
		HospitalID: appointment.HospitalID,
		PatientID:  appointment.PatientID,
		StaffID:    appointment.StaffID,
		Type:       string(appointment.Type),
		StartTime:  appointment.StartTime,
		EndTime:    appointment.EndTime,
		Status:     string(appointment.Status),
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
		UpdatedAt:  appointment.UpdatedAt,
	}
	if appointment.Staff != nil {
		resp.StaffName = appointment.Staff.FullName
	}
	return &resp
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
