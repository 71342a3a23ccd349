package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names
const (
	RolePatient      = "patient"
	RolePsychologist = "psychologist"
)

// UserProfile is the single identity table: credentials plus the role
// attribute that gates the management views.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'patient';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// IsPsychologist checks if the profile carries the staff role.
func (u *UserProfile) IsPsychologist() bool {
	return u.Role == RolePsychologist
}
