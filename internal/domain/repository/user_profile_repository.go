package repository

import (
	"context"

	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}
