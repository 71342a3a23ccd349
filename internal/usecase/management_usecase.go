package usecase

import (
	"context"
	"errors"

	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"
	"psicoclinica-server/internal/realtime"
	"psicoclinica-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidFilter = errors.New("invalid appointment filter")
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Management filters
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterConfirmed = "confirmed"
)

type ManagementUsecase interface {
	GetAppointments(ctx context.Context, filter string) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
}

type managementUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	hub             *realtime.Hub
}

func NewManagementUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	hub *realtime.Hub,
) ManagementUsecase {
	return &managementUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		hub:             hub,
	}
}

// GetAppointments lists every appointment, optionally narrowed to one
// status, ordered by (date asc, time asc). An empty filter means all.
func (u *managementUsecase) GetAppointments(ctx context.Context, filter string) (*dto.AppointmentListResponse, error) {
	var status *entity.AppointmentStatus
	switch filter {
	case FilterAll, "":
		status = nil
	case FilterPending:
		s := entity.AppointmentStatusPendiente
		status = &s
	case FilterConfirmed:
		s := entity.AppointmentStatusConfirmada
		status = &s
	default:
		return nil, ErrInvalidFilter
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, status)
	if err != nil {
		u.log.Warnf("Failed to list appointments (filter=%s): %+v", filter, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointmentStatus flips an appointment between pendiente and
// confirmada, stamping confirmed_by with the acting staff member. Every
// successful transition appends exactly one audit action; a failure to
// append is logged and does not undo the transition. Concurrent flips
// are not detected: the later write wins and both audit rows remain.
func (u *managementUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	psychologistID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	newStatus := entity.AppointmentStatus(status)
	if !entity.ValidAppointmentStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus, psychologistID); err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	appointment.Status = newStatus
	appointment.ConfirmedBy = &psychologistID

	u.auditService.RecordAppointmentStatus(ctx, psychologistID, appointment, newStatus)

	u.hub.Publish(ctx, realtime.Event{
		Table:    realtime.TopicAppointments,
		Action:   realtime.ActionUpdate,
		RecordID: appointment.ID.String(),
		Owner:    appointment.Email,
	})

	u.log.Infof("Appointment %s set to %s by %s", appointmentID, newStatus, psychologistID)
	return converter.AppointmentToResponse(appointment), nil
}
