package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,basic_email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ReplyContactMessageRequest struct {
	ResponseMessage string `json:"response_message" validate:"required"`
}

// Response DTOs

type ContactMessageResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	ResponseMessage *string    `json:"response_message,omitempty"`
	RespondedBy     *uuid.UUID `json:"responded_by,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
	Total    int                      `json:"total"`
}
