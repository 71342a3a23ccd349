package repository

import (
	"context"

	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByEmail returns the requester's appointments ordered by
	// (date asc, time asc).
	FindByEmail(ctx context.Context, email string) ([]entity.Appointment, error)
	// FindAll returns every appointment, optionally filtered by status,
	// ordered by (date asc, time asc). A nil status means no filter.
	FindAll(ctx context.Context, status *entity.AppointmentStatus) ([]entity.Appointment, error)
	// FindBookedTimes returns the times already recorded for the exact
	// (psychologist, date) pair.
	FindBookedTimes(ctx context.Context, psychologist, date string) ([]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, confirmedBy uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
