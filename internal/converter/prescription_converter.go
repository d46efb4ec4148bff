package converter

import (
	"hospital-admin-platform/internal/delivery/dto"
	"hospital-admin-platform/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	resp := dto.PrescriptionResponse{
		ID:          prescription.ID,
		HospitalID:  prescription.HospitalID,
		PatientID:   prescription.PatientID,
		PatientName: prescription.PatientName,
		DoctorID:    prescription.DoctorID,
		DoctorName:  prescription.DoctorName,
		Date:        prescription.Date,
		Complaints:  prescription.Complaints,
		Advice:      prescription.Advice,
		CreatedAt:   prescription.CreatedAt,
	}
	for _, med := range prescription.Meds {
		resp.Meds = append(resp.Meds, dto.MedicationRequest{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Duration:  med.Duration,
		})
	}
	for _, therapy := range prescription.Therapies {
		resp.Therapies = append(resp.Therapies, dto.TherapyRequest{
			Name:     therapy.Name,
			Sessions: therapy.Sessions,
			Notes:    therapy.Notes,
		})
	}
	return &resp
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

// MedicationsFromRequests converts request lines to the entity JSONB list
func MedicationsFromRequests(meds []dto.MedicationRequest) entity.MedicationList {
	if len(meds) == 0 {
		return nil
	}
	list := make(entity.MedicationList, len(meds))
	for i, med := range meds {
		list[i] = entity.Medication{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Frequency: med.Frequency,
			Duration:  med.Duration,
		}
	}
	return list
}

// TherapiesFromRequests converts request lines to the entity JSONB list
func TherapiesFromRequests(therapies []dto.TherapyRequest) entity.TherapyList {
	if len(therapies) == 0 {
		return nil
	}
	list := make(entity.TherapyList, len(therapies))
	for i, therapy := range therapies {
		list[i] = entity.Therapy{
			Name:     therapy.Name,
			Sessions: therapy.Sessions,
			Notes:    therapy.Notes,
		}
	}
	return list
}
