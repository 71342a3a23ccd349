package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message sent through the public contact form.
// The reply fields are written at most once; after responded_at is set
// no further reply is accepted.
type ContactMessage struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	Email           string     `gorm:"type:varchar(255);not null" json:"email"`
	Subject         string     `gorm:"type:varchar(255);not null" json:"subject"`
	Message         string     `gorm:"type:text;not null" json:"message"`
	ResponseMessage *string    `gorm:"type:text" json:"response_message,omitempty"`
	RespondedBy     *uuid.UUID `gorm:"type:uuid" json:"responded_by,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// IsResponded checks if the message already carries its single reply.
func (m *ContactMessage) IsResponded() bool {
	return m.RespondedAt != nil
}
