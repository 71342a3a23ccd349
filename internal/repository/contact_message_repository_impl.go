package repository

import (
	"context"
	"errors"
	"time"

	"psicoclinica-server/internal/domain/entity"
	domainRepo "psicoclinica-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) domainRepo.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var message entity.ContactMessage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Reply atomically writes the single response ONLY if none exists yet.
// Returns affected rows: 1 = success, 0 = already responded (prevents a
// double-reply race).
func (r *contactMessageRepository) Reply(ctx context.Context, id uuid.UUID, responseMessage string, respondedBy uuid.UUID, respondedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.ContactMessage{}).
		Where("id = ? AND responded_at IS NULL", id).
		Updates(map[string]interface{}{
			"response_message": responseMessage,
			"responded_by":     respondedBy,
			"responded_at":     respondedAt,
		})
	return result.RowsAffected, result.Error
}
