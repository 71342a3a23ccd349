package converter

import (
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
)

// ContactMessageToResponse converts a ContactMessage entity to its DTO
func ContactMessageToResponse(message *entity.ContactMessage) *dto.ContactMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ContactMessageResponse{
		ID:              message.ID,
		Name:            message.Name,
		Email:           message.Email,
		Subject:         message.Subject,
		Message:         message.Message,
		ResponseMessage: message.ResponseMessage,
		RespondedBy:     message.RespondedBy,
		RespondedAt:     message.RespondedAt,
		CreatedAt:       message.CreatedAt,
	}
}

// ContactMessagesToResponses converts a slice of entities, preserving order
func ContactMessagesToResponses(messages []entity.ContactMessage) []dto.ContactMessageResponse {
	responses := make([]dto.ContactMessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *ContactMessageToResponse(&message)
	}
	return responses
}
