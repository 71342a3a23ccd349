package repository

import (
	"context"
	"time"

	"psicoclinica-server/internal/domain/entity"

	"github.com/google/uuid"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	// FindAll returns every message ordered by created_at descending.
	FindAll(ctx context.Context) ([]entity.ContactMessage, error)
	// Reply writes the single response onto a message that has none yet.
	// Returns affected rows: 1 = reply recorded, 0 = already responded.
	Reply(ctx context.Context, id uuid.UUID, responseMessage string, respondedBy uuid.UUID, respondedAt time.Time) (int64, error)
}
