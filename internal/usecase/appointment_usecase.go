package usecase

import (
	"context"
	"errors"
	"time"

	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"
	"psicoclinica-server/internal/realtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated    = errors.New("user not found in context")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrAppointmentPast     = errors.New("appointment date has already passed")
)

// ValidationError carries the booking draft's per-field error map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "appointment validation failed"
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	profileRepo     repository.UserProfileRepository
	hub             *realtime.Hub
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	profileRepo repository.UserProfileRepository,
	hub *realtime.Hub,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		hub:             hub,
	}
}

// CreateAppointment runs the booking draft through its full validation
// and, when clean, records a pending appointment. The contract is that a
// draft failing any rule never reaches the store.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	profile, err := u.profileRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load profile %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotAuthenticated
	}

	draft := entity.NewBookingDraft(profile.FullName, profile.Email)
	draft.SetField(entity.FieldName, req.Name)
	draft.SetField(entity.FieldEmail, req.Email)
	draft.SetField(entity.FieldPhone, req.Phone)
	draft.SetField(entity.FieldPsychologist, req.Psychologist)
	draft.SetField(entity.FieldDate, req.Date)
	draft.SetField(entity.FieldTime, req.Time)
	draft.SetField(entity.FieldReason, req.Reason)

	if !draft.Validate(time.Now()) {
		return nil, &ValidationError{Fields: draft.Errors}
	}
	if err := draft.BeginSubmit(); err != nil {
		return nil, err
	}

	appointment := draft.ToAppointment()
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		draft.FailSubmit()
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	draft.CompleteSubmit()

	u.hub.Publish(ctx, realtime.Event{
		Table:    realtime.TopicAppointments,
		Action:   realtime.ActionInsert,
		RecordID: appointment.ID.String(),
		Owner:    appointment.Email,
	})

	u.log.Infof("Appointment created: id=%s, psychologist=%s, date=%s %s", appointment.ID, appointment.Psychologist, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns the caller's appointments ordered by
// (date asc, time asc).
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	appointments, err := u.appointmentRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", email, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment hard-deletes the caller's appointment. Cancellation
// of a past appointment is refused here, not just in the client.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if appointment.Email != email {
		return ErrAppointmentNotOwned
	}
	if appointment.IsPast(time.Now()) {
		return ErrAppointmentPast
	}

	if err := u.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}

	u.hub.Publish(ctx, realtime.Event{
		Table:    realtime.TopicAppointments,
		Action:   realtime.ActionDelete,
		RecordID: appointmentID.String(),
		Owner:    appointment.Email,
	})

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}
