package usecase

import (
	"testing"

	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagementFixture(appointments []entity.Appointment) (ManagementUsecase, *stubAppointmentRepo, *stubActionRepo) {
	appointmentRepo := &stubAppointmentRepo{appointments: appointments}
	actionRepo := &stubActionRepo{}
	auditService := service.NewAuditService(newTestLogger(), actionRepo)
	u := NewManagementUsecase(newTestLogger(), appointmentRepo, auditService, newTestHub())
	return u, appointmentRepo, actionRepo
}

func TestGetAppointmentsFilters(t *testing.T) {
	u, _, _ := newManagementFixture([]entity.Appointment{
		{ID: uuid.New(), Date: "2026-09-09", Time: "09:00", Status: entity.AppointmentStatusPendiente},
		{ID: uuid.New(), Date: "2026-09-09", Time: "10:00", Status: entity.AppointmentStatusConfirmada},
		{ID: uuid.New(), Date: "2026-09-08", Time: "09:00", Status: entity.AppointmentStatusPendiente},
	})
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	all, err := u.GetAppointments(ctx, FilterAll)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, "2026-09-08", all.Appointments[0].Date, "ordered by date, time")

	pending, err := u.GetAppointments(ctx, FilterPending)
	require.NoError(t, err)
	require.Equal(t, 2, pending.Total)
	for _, a := range pending.Appointments {
		assert.Equal(t, "pendiente", a.Status)
	}

	confirmed, err := u.GetAppointments(ctx, FilterConfirmed)
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed.Total)
}

func TestGetAppointmentsRejectsUnknownFilter(t *testing.T) {
	u, _, _ := newManagementFixture(nil)
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	_, err := u.GetAppointments(ctx, "cancelled")

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestUpdateAppointmentStatusConfirmRecordsOneAction(t *testing.T) {
	appointmentID := uuid.New()
	u, appointmentRepo, actionRepo := newManagementFixture([]entity.Appointment{
		{ID: appointmentID, Name: "Ana Pérez", Date: "2026-09-09", Time: "09:00", Status: entity.AppointmentStatusPendiente},
	})
	staffID := uuid.New()
	ctx := authedContext(staffID, "staff@example.com", entity.RolePsychologist)

	resp, err := u.UpdateAppointmentStatus(ctx, appointmentID, "confirmada")

	require.NoError(t, err)
	assert.Equal(t, "confirmada", resp.Status)
	require.NotNil(t, resp.ConfirmedBy)
	assert.Equal(t, staffID, *resp.ConfirmedBy)

	assert.Equal(t, entity.AppointmentStatusConfirmada, appointmentRepo.appointments[0].Status)

	require.Len(t, actionRepo.actions, 1, "exactly one action per transition")
	action := actionRepo.actions[0]
	assert.Equal(t, entity.ActionConfirmedAppointment, action.ActionType)
	assert.Equal(t, appointmentID.String(), action.TargetID)
	assert.Equal(t, "Ana Pérez", action.Details["patient_name"])
	assert.Equal(t, "2026-09-09", action.Details["appointment_date"])
}

func TestUpdateAppointmentStatusBackToPending(t *testing.T) {
	appointmentID := uuid.New()
	u, _, actionRepo := newManagementFixture([]entity.Appointment{
		{ID: appointmentID, Name: "Ana Pérez", Date: "2026-09-09", Time: "09:00", Status: entity.AppointmentStatusConfirmada},
	})
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	resp, err := u.UpdateAppointmentStatus(ctx, appointmentID, "pendiente")

	require.NoError(t, err)
	assert.Equal(t, "pendiente", resp.Status)
	require.Len(t, actionRepo.actions, 1)
	assert.Equal(t, entity.ActionMarkedAppointmentPending, actionRepo.actions[0].ActionType)
}

func TestUpdateAppointmentStatusFailedAuditDoesNotFailTransition(t *testing.T) {
	appointmentID := uuid.New()
	appointmentRepo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: appointmentID, Date: "2026-09-09", Time: "09:00", Status: entity.AppointmentStatusPendiente},
	}}
	actionRepo := &stubActionRepo{err: assert.AnError}
	auditService := service.NewAuditService(newTestLogger(), actionRepo)
	u := NewManagementUsecase(newTestLogger(), appointmentRepo, auditService, newTestHub())
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	_, err := u.UpdateAppointmentStatus(ctx, appointmentID, "confirmada")

	require.NoError(t, err, "audit failures are best-effort")
	assert.Equal(t, entity.AppointmentStatusConfirmada, appointmentRepo.appointments[0].Status)
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	u, _, actionRepo := newManagementFixture(nil)
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	_, err := u.UpdateAppointmentStatus(ctx, uuid.New(), "cancelada")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, actionRepo.actions)
}
