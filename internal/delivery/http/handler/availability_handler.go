package handler

import (
	"net/http"

	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/usecase"
	"psicoclinica-server/pkg/response"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetPsychologists returns the clinic roster.
func (h *AvailabilityHandler) GetPsychologists(w http.ResponseWriter, r *http.Request) {
	psychologists := converter.PsychologistsToResponses(entity.PsychologistRoster())
	response.Success(w, http.StatusOK, "Psychologists retrieved successfully", psychologists)
}

// GetDates returns the currently bookable dates.
func (h *AvailabilityHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates := h.availabilityUsecase.GetEligibleDates()
	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}

// GetTimes returns the free slots for a psychologist on a date. Both
// query parameters are required in practice; with either missing the
// result is simply an empty list, matching the form's behavior of
// showing no times until both are chosen.
func (h *AvailabilityHandler) GetTimes(w http.ResponseWriter, r *http.Request) {
	psychologist := r.URL.Query().Get("psychologist")
	date := r.URL.Query().Get("date")

	availability := h.availabilityUsecase.GetAvailableTimes(r.Context(), psychologist, date)
	response.Success(w, http.StatusOK, "Available times retrieved successfully", availability)
}
