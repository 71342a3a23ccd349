package service

import (
	"context"

	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService appends PsychologistAction records after staff mutations.
// Writes are best-effort: a failed audit insert is logged and never rolls
// back or fails the mutation it describes.
type AuditService interface {
	RecordAppointmentStatus(ctx context.Context, psychologistID uuid.UUID, appointment *entity.Appointment, newStatus entity.AppointmentStatus)
	RecordMessageReply(ctx context.Context, psychologistID uuid.UUID, message *entity.ContactMessage)
}

type auditService struct {
	log        *logrus.Logger
	actionRepo repository.PsychologistActionRepository
}

func NewAuditService(log *logrus.Logger, actionRepo repository.PsychologistActionRepository) AuditService {
	return &auditService{
		log:        log,
		actionRepo: actionRepo,
	}
}

func (s *auditService) RecordAppointmentStatus(ctx context.Context, psychologistID uuid.UUID, appointment *entity.Appointment, newStatus entity.AppointmentStatus) {
	actionType := entity.ActionMarkedAppointmentPending
	if newStatus == entity.AppointmentStatusConfirmada {
		actionType = entity.ActionConfirmedAppointment
	}

	action := &entity.PsychologistAction{
		PsychologistID: psychologistID,
		ActionType:     actionType,
		TargetID:       appointment.ID.String(),
		Details: entity.JSON{
			"patient_name":     appointment.Name,
			"appointment_date": appointment.Date,
		},
	}

	if err := s.actionRepo.Create(ctx, action); err != nil {
		s.log.Warnf("Failed to record %s action for appointment %s: %+v", actionType, appointment.ID, err)
	}
}

func (s *auditService) RecordMessageReply(ctx context.Context, psychologistID uuid.UUID, message *entity.ContactMessage) {
	action := &entity.PsychologistAction{
		PsychologistID: psychologistID,
		ActionType:     entity.ActionRespondedMessage,
		TargetID:       message.ID.String(),
		Details: entity.JSON{
			"message_subject": message.Subject,
			"patient_email":   message.Email,
		},
	}

	if err := s.actionRepo.Create(ctx, action); err != nil {
		s.log.Warnf("Failed to record responded_message action for message %s: %+v", message.ID, err)
	}
}
