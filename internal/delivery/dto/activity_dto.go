package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type PsychologistActionResponse struct {
	ID             int64                  `json:"id"`
	PsychologistID uuid.UUID              `json:"psychologist_id"`
	ActionType     string                 `json:"action_type"`
	TargetID       string                 `json:"target_id"`
	Details        map[string]interface{} `json:"details,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type ActivityListResponse struct {
	Actions []PsychologistActionResponse `json:"actions"`
	Total   int                          `json:"total"`
}
