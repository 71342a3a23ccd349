package handler

import (
	"net/http"

	"psicoclinica-server/internal/usecase"
	"psicoclinica-server/pkg/response"
)

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
	}
}

// List returns the acting staff member's recorded actions, newest first.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityUsecase.GetMyActivity(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		default:
			response.InternalServerError(w, "Failed to get activity")
		}
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
