package converter

import (
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		Name:         appointment.Name,
		Email:        appointment.Email,
		Phone:        appointment.Phone,
		Psychologist: appointment.Psychologist,
		Date:         appointment.Date,
		Time:         appointment.Time,
		Reason:       appointment.Reason,
		Status:       string(appointment.Status),
		ConfirmedBy:  appointment.ConfirmedBy,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of entities, preserving order
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// PsychologistsToResponses converts roster entries
func PsychologistsToResponses(psychologists []entity.Psychologist) []dto.PsychologistResponse {
	responses := make([]dto.PsychologistResponse, len(psychologists))
	for i, p := range psychologists {
		responses[i] = dto.PsychologistResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
		}
	}
	return responses
}
