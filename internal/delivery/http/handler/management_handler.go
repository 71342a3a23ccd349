package handler

import (
	"encoding/json"
	"net/http"

	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/usecase"
	"psicoclinica-server/pkg/response"
	"psicoclinica-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ManagementHandler struct {
	managementUsecase usecase.ManagementUsecase
	validator         *validator.CustomValidator
}

func NewManagementHandler(managementUsecase usecase.ManagementUsecase, validator *validator.CustomValidator) *ManagementHandler {
	return &ManagementHandler{
		managementUsecase: managementUsecase,
		validator:         validator,
	}
}

// ListAppointments returns every appointment, optionally filtered by
// status. filter is one of all, pending, confirmed; missing means all.
func (h *ManagementHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = usecase.FilterAll
	}

	appointments, err := h.managementUsecase.GetAppointments(r.Context(), filter)
	if err != nil {
		switch err {
		case usecase.ErrInvalidFilter:
			response.BadRequest(w, "Invalid filter, must be one of: all, pending, confirmed")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateAppointmentStatus moves an appointment between pendiente and
// confirmada, recording who acted.
func (h *ManagementHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.managementUsecase.UpdateAppointmentStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.BadRequest(w, "Invalid status")
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
