package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment request.
type AppointmentStatus string

const (
	AppointmentStatusPendiente  AppointmentStatus = "pendiente"
	AppointmentStatusConfirmada AppointmentStatus = "confirmada"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	return s == AppointmentStatusPendiente || s == AppointmentStatusConfirmada
}

// Appointment represents a consultation request made by a patient.
// Date and Time are kept as ISO strings (YYYY-MM-DD, HH:MM) so that
// (date asc, time asc) ordering is plain lexicographic ordering.
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string            `gorm:"type:varchar(255);not null" json:"name"`
	Email        string            `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone        string            `gorm:"type:varchar(30);not null" json:"phone"`
	Psychologist string            `gorm:"type:varchar(255);not null;index" json:"psychologist"`
	Date         string            `gorm:"type:varchar(10);not null;index" json:"date"`
	Time         string            `gorm:"type:varchar(5);not null" json:"time"`
	Reason       string            `gorm:"type:text;not null" json:"reason"`
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'pendiente';index" json:"status"`
	ConfirmedBy  *uuid.UUID        `gorm:"type:uuid" json:"confirmed_by,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPendiente checks if the appointment is awaiting confirmation.
func (a *Appointment) IsPendiente() bool {
	return a.Status == AppointmentStatusPendiente
}

// IsConfirmada checks if the appointment has been confirmed by staff.
func (a *Appointment) IsConfirmada() bool {
	return a.Status == AppointmentStatusConfirmada
}

// IsPast reports whether the appointment date is strictly before today.
func (a *Appointment) IsPast(now time.Time) bool {
	return a.Date < now.Format("2006-01-02")
}
