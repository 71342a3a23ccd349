package usecase

import (
	"context"
	"sort"
	"time"

	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
)

// In-memory stub repositories. Each stub keeps records in a slice and
// supports an injectable error to exercise failure paths.

type stubAppointmentRepo struct {
	appointments []entity.Appointment
	err          error
}

func (r *stubAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if r.err != nil {
		return r.err
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *stubAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			found := r.appointments[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubAppointmentRepo) FindByEmail(ctx context.Context, email string) ([]entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []entity.Appointment
	for _, a := range r.appointments {
		if a.Email == email {
			result = append(result, a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (r *stubAppointmentRepo) FindAll(ctx context.Context, status *entity.AppointmentStatus) ([]entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []entity.Appointment
	for _, a := range r.appointments {
		if status == nil || a.Status == *status {
			result = append(result, a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (r *stubAppointmentRepo) FindBookedTimes(ctx context.Context, psychologist, date string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var times []string
	for _, a := range r.appointments {
		if a.Psychologist == psychologist && a.Date == date {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

func (r *stubAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, confirmedBy uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = status
			r.appointments[i].ConfirmedBy = &confirmedBy
			return nil
		}
	}
	return nil
}

func (r *stubAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return nil
}

func sortAppointments(appointments []entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
}

type stubProfileRepo struct {
	profiles map[uuid.UUID]*entity.UserProfile
	err      error
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *entity.UserProfile) error {
	if r.err != nil {
		return r.err
	}
	if r.profiles == nil {
		r.profiles = map[uuid.UUID]*entity.UserProfile{}
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *stubProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	found := *profile
	return &found, nil
}

func (r *stubProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, profile := range r.profiles {
		if profile.Email == email {
			found := *profile
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubProfileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if r.err != nil {
		return r.err
	}
	if profile, ok := r.profiles[id]; ok {
		profile.Role = role
	}
	return nil
}

type stubMessageRepo struct {
	messages []entity.ContactMessage
	err      error
}

func (r *stubMessageRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *stubMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.messages {
		if r.messages[i].ID == id {
			found := r.messages[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubMessageRepo) FindAll(ctx context.Context) ([]entity.ContactMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]entity.ContactMessage, len(r.messages))
	copy(result, r.messages)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *stubMessageRepo) Reply(ctx context.Context, id uuid.UUID, responseMessage string, respondedBy uuid.UUID, respondedAt time.Time) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	for i := range r.messages {
		if r.messages[i].ID == id && r.messages[i].RespondedAt == nil {
			r.messages[i].ResponseMessage = &responseMessage
			r.messages[i].RespondedBy = &respondedBy
			r.messages[i].RespondedAt = &respondedAt
			return 1, nil
		}
	}
	return 0, nil
}

type stubActionRepo struct {
	actions []entity.PsychologistAction
	err     error
}

func (r *stubActionRepo) Create(ctx context.Context, action *entity.PsychologistAction) error {
	if r.err != nil {
		return r.err
	}
	action.ID = int64(len(r.actions) + 1)
	r.actions = append(r.actions, *action)
	return nil
}

func (r *stubActionRepo) FindByPsychologistID(ctx context.Context, psychologistID uuid.UUID) ([]entity.PsychologistAction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []entity.PsychologistAction
	for _, action := range r.actions {
		if action.PsychologistID == psychologistID {
			result = append(result, action)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
