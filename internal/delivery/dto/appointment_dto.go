package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest carries the booking form fields. Field rules
// live in the booking draft, which returns a per-field error map; the
// struct itself is decoded as-is.
type CreateAppointmentRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Psychologist string `json:"psychologist"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente confirmada"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Psychologist string     `json:"psychologist"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ConfirmedBy  *uuid.UUID `json:"confirmed_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
