package entity

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DraftState is the lifecycle state of a booking draft.
type DraftState string

const (
	DraftUnauthenticated  DraftState = "unauthenticated"
	DraftEditing          DraftState = "editing"
	DraftSubmitting       DraftState = "submitting"
	DraftValidationFailed DraftState = "validation_failed"
)

// Draft field names
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPsychologist = "psychologist"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldReason       = "reason"
)

var ErrDraftNotValidated = errors.New("draft has unresolved validation errors")

// basicEmailPattern is the documented local@domain.tld check. Intentionally
// loose; real deliverability is not this layer's problem.
var basicEmailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// BasicEmailValid reports whether s matches the basic local@domain.tld shape.
func BasicEmailValid(s string) bool {
	return basicEmailPattern.MatchString(s)
}

// BookingDraft is the appointment form's draft record and its state
// machine. A draft starts Editing, prefilled with the identity's name and
// email, or Unauthenticated when there is no identity (every field locked).
// Changing psychologist or date clears an already chosen time so a stale
// slot can never be submitted.
type BookingDraft struct {
	State  DraftState
	Errors map[string]string

	Name         string
	Email        string
	Phone        string
	Psychologist string
	Date         string
	Time         string
	Reason       string

	baselineName  string
	baselineEmail string
}

// NewBookingDraft builds a draft for the given identity. Empty fullName
// and email mean no identity: the draft stays Unauthenticated.
func NewBookingDraft(fullName, email string) *BookingDraft {
	d := &BookingDraft{
		State:         DraftUnauthenticated,
		Errors:        map[string]string{},
		baselineName:  fullName,
		baselineEmail: email,
	}
	if fullName != "" || email != "" {
		d.reset()
	}
	return d
}

func (d *BookingDraft) reset() {
	d.Name = d.baselineName
	d.Email = d.baselineEmail
	d.Phone = ""
	d.Psychologist = ""
	d.Date = ""
	d.Time = ""
	d.Reason = ""
	d.Errors = map[string]string{}
	d.State = DraftEditing
}

// SetField updates one draft field. Setting psychologist or date clears
// the chosen time. A non-empty value clears the field's pending error.
// Fields are locked unless the draft is Editing or ValidationFailed.
func (d *BookingDraft) SetField(field, value string) {
	if d.State != DraftEditing && d.State != DraftValidationFailed {
		return
	}

	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldPsychologist:
		d.Psychologist = value
		d.Time = ""
	case FieldDate:
		d.Date = value
		d.Time = ""
	case FieldTime:
		d.Time = value
	case FieldReason:
		d.Reason = value
	default:
		return
	}

	if strings.TrimSpace(value) != "" {
		delete(d.Errors, field)
	}
}

// Validate runs the full rule set, fills the error map and moves the
// draft to ValidationFailed when anything is wrong. It never performs a
// network call; the submission contract is that an invalid draft is
// never submitted.
func (d *BookingDraft) Validate(now time.Time) bool {
	errs := map[string]string{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = "El nombre es requerido"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = "El email es requerido"
	} else if !BasicEmailValid(d.Email) {
		errs[FieldEmail] = "Email inválido"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs[FieldPhone] = "El teléfono es requerido"
	}
	if d.Psychologist == "" || !KnownPsychologist(d.Psychologist) {
		errs[FieldPsychologist] = "Seleccione un psicólogo"
	}
	if d.Date == "" || !EligibleDate(now, d.Date) {
		errs[FieldDate] = "Seleccione una fecha"
	}
	if d.Time == "" || !ValidSlot(d.Time) {
		errs[FieldTime] = "Seleccione una hora"
	}
	if strings.TrimSpace(d.Reason) == "" {
		errs[FieldReason] = "La razón de la consulta es requerida"
	}

	d.Errors = errs
	if len(errs) > 0 {
		d.State = DraftValidationFailed
		return false
	}
	d.State = DraftEditing
	return true
}

// BeginSubmit moves a clean draft to Submitting.
func (d *BookingDraft) BeginSubmit() error {
	if d.State != DraftEditing || len(d.Errors) > 0 {
		return ErrDraftNotValidated
	}
	d.State = DraftSubmitting
	return nil
}

// CompleteSubmit records a successful create: the draft goes back to the
// identity-prefilled baseline with no errors.
func (d *BookingDraft) CompleteSubmit() {
	d.reset()
}

// FailSubmit records a collaborator failure: the draft is preserved so
// the user can retry manually.
func (d *BookingDraft) FailSubmit() {
	d.State = DraftEditing
}

// ToAppointment materializes the draft as a pending appointment.
func (d *BookingDraft) ToAppointment() *Appointment {
	return &Appointment{
		Name:         strings.TrimSpace(d.Name),
		Email:        strings.TrimSpace(d.Email),
		Phone:        strings.TrimSpace(d.Phone),
		Psychologist: d.Psychologist,
		Date:         d.Date,
		Time:         d.Time,
		Reason:       strings.TrimSpace(d.Reason),
		Status:       AppointmentStatusPendiente,
	}
}
