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

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

// Submit accepts a contact form message. Public, no authentication.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.SubmitContactMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit message")
		return
	}

	response.Success(w, http.StatusCreated, "Mensaje enviado correctamente", message)
}

// List returns every contact message, newest first. Staff only.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUsecase.GetMessages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

// Reply writes the single response onto a message. A second reply
// attempt is a conflict, not an overwrite.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	messageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid message ID")
		return
	}

	var req dto.ReplyContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.ReplyToMessage(r.Context(), messageID, req.ResponseMessage)
	if err != nil {
		switch err {
		case usecase.ErrMessageNotFound:
			response.NotFound(w, "Message not found")
		case usecase.ErrMessageAlreadyResponded:
			response.Conflict(w, "Message has already been responded")
		default:
			response.InternalServerError(w, "Failed to reply to message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Respuesta enviada correctamente", message)
}
