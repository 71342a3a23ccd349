package converter

import (
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
)

// PsychologistActionToResponse converts an action entity to its DTO
func PsychologistActionToResponse(action *entity.PsychologistAction) *dto.PsychologistActionResponse {
	if action == nil {
		return nil
	}

	return &dto.PsychologistActionResponse{
		ID:             action.ID,
		PsychologistID: action.PsychologistID,
		ActionType:     action.ActionType,
		TargetID:       action.TargetID,
		Details:        action.Details,
		CreatedAt:      action.CreatedAt,
	}
}

// PsychologistActionsToResponses converts a slice of entities, preserving order
func PsychologistActionsToResponses(actions []entity.PsychologistAction) []dto.PsychologistActionResponse {
	responses := make([]dto.PsychologistActionResponse, len(actions))
	for i, action := range actions {
		responses[i] = *PsychologistActionToResponse(&action)
	}
	return responses
}
