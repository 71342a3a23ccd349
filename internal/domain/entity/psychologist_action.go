package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PsychologistAction is an append-only audit entry recording a staff
// mutation on appointments or contact messages. Rows are never updated
// or deleted.
type PsychologistAction struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PsychologistID uuid.UUID `gorm:"type:uuid;not null;index" json:"psychologist_id"`
	ActionType     string    `gorm:"type:varchar(100);not null;index" json:"action_type"`
	TargetID       string    `gorm:"type:varchar(100);not null" json:"target_id"`
	Details        JSON      `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (PsychologistAction) TableName() string {
	return "psychologist_actions"
}

// Known action types
const (
	ActionConfirmedAppointment     = "confirmed_appointment"
	ActionMarkedAppointmentPending = "marked_appointment_pending"
	ActionRespondedMessage         = "responded_message"
)

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
