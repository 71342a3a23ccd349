package repository

import (
	"context"

	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
)

type PsychologistActionRepository interface {
	Create(ctx context.Context, action *entity.PsychologistAction) error
	// FindByPsychologistID returns the staff member's actions ordered by
	// created_at descending.
	FindByPsychologistID(ctx context.Context, psychologistID uuid.UUID) ([]entity.PsychologistAction, error)
}
