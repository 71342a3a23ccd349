package usecase

import (
	"context"
	"testing"
	"time"

	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:       uuid.New(),
		Email:    "ana@example.com",
		FullName: "Ana Pérez",
		Role:     entity.RolePatient,
	}
}

func validCreateRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Name:         "Ana Pérez",
		Email:        "ana@example.com",
		Phone:        "5512345678",
		Psychologist: "Córdova Ruvalcaba Mario Antonio",
		Date:         nextWeekday(),
		Time:         "10:00",
		Reason:       "Primera consulta",
	}
}

func TestCreateAppointmentRecordsPending(t *testing.T) {
	profile := newPatientProfile()
	profileRepo := &stubProfileRepo{profiles: map[uuid.UUID]*entity.UserProfile{profile.ID: profile}}
	appointmentRepo := &stubAppointmentRepo{}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, profileRepo, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	resp, err := u.CreateAppointment(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "pendiente", resp.Status)
	assert.Equal(t, "10:00", resp.Time)
	require.Len(t, appointmentRepo.appointments, 1)
	assert.Equal(t, entity.AppointmentStatusPendiente, appointmentRepo.appointments[0].Status)
}

func TestCreateAppointmentValidationFailureNeverReachesStore(t *testing.T) {
	profile := newPatientProfile()
	profileRepo := &stubProfileRepo{profiles: map[uuid.UUID]*entity.UserProfile{profile.ID: profile}}
	appointmentRepo := &stubAppointmentRepo{}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, profileRepo, newTestHub())

	req := validCreateRequest()
	req.Phone = ""
	req.Time = "13:00"

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	_, err := u.CreateAppointment(ctx, req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "El teléfono es requerido", validationErr.Fields[entity.FieldPhone])
	assert.Equal(t, "Seleccione una hora", validationErr.Fields[entity.FieldTime])
	assert.Empty(t, appointmentRepo.appointments)
}

func TestCreateAppointmentRequiresAuthentication(t *testing.T) {
	u := NewAppointmentUsecase(newTestLogger(), &stubAppointmentRepo{}, &stubProfileRepo{}, newTestHub())

	_, err := u.CreateAppointment(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetMyAppointmentsReturnsOnlyOwnOrdered(t *testing.T) {
	profile := newPatientProfile()
	appointmentRepo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: uuid.New(), Email: "ana@example.com", Date: "2026-09-10", Time: "15:00"},
		{ID: uuid.New(), Email: "otro@example.com", Date: "2026-09-09", Time: "09:00"},
		{ID: uuid.New(), Email: "ana@example.com", Date: "2026-09-09", Time: "10:00"},
		{ID: uuid.New(), Email: "ana@example.com", Date: "2026-09-09", Time: "09:00"},
	}}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, &stubProfileRepo{}, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	resp, err := u.GetMyAppointments(ctx)

	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "09:00", resp.Appointments[0].Time)
	assert.Equal(t, "10:00", resp.Appointments[1].Time)
	assert.Equal(t, "2026-09-10", resp.Appointments[2].Date)
}

func TestCancelAppointmentDeletesOwnFutureAppointment(t *testing.T) {
	profile := newPatientProfile()
	id := uuid.New()
	future := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	appointmentRepo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: id, Email: profile.Email, Date: future, Time: "10:00"},
	}}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, &stubProfileRepo{}, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	require.NoError(t, u.CancelAppointment(ctx, id))
	assert.Empty(t, appointmentRepo.appointments)
}

func TestCancelAppointmentRejectsForeignAppointment(t *testing.T) {
	profile := newPatientProfile()
	id := uuid.New()
	appointmentRepo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: id, Email: "otro@example.com", Date: "2099-01-04", Time: "10:00"},
	}}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, &stubProfileRepo{}, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	err := u.CancelAppointment(ctx, id)

	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
	assert.Len(t, appointmentRepo.appointments, 1)
}

func TestCancelAppointmentRejectsPastDate(t *testing.T) {
	profile := newPatientProfile()
	id := uuid.New()
	appointmentRepo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: id, Email: profile.Email, Date: "2020-01-06", Time: "10:00"},
	}}
	u := NewAppointmentUsecase(newTestLogger(), appointmentRepo, &stubProfileRepo{}, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	err := u.CancelAppointment(ctx, id)

	assert.ErrorIs(t, err, ErrAppointmentPast)
	assert.Len(t, appointmentRepo.appointments, 1)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	profile := newPatientProfile()
	u := NewAppointmentUsecase(newTestLogger(), &stubAppointmentRepo{}, &stubProfileRepo{}, newTestHub())

	ctx := authedContext(profile.ID, profile.Email, profile.Role)
	err := u.CancelAppointment(ctx, uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
