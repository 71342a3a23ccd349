package repository

import (
	"context"

	"psicoclinica-server/internal/domain/entity"
	domainRepo "psicoclinica-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type psychologistActionRepository struct {
	db *gorm.DB
}

func NewPsychologistActionRepository(db *gorm.DB) domainRepo.PsychologistActionRepository {
	return &psychologistActionRepository{db: db}
}

func (r *psychologistActionRepository) Create(ctx context.Context, action *entity.PsychologistAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *psychologistActionRepository) FindByPsychologistID(ctx context.Context, psychologistID uuid.UUID) ([]entity.PsychologistAction, error) {
	var actions []entity.PsychologistAction
	err := r.db.WithContext(ctx).
		Where("psychologist_id = ?", psychologistID).
		Order("created_at DESC").
		Find(&actions).Error
	if err != nil {
		return nil, err
	}
	return actions, nil
}
