package usecase

import (
	"context"
	"errors"
	"time"

	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"
	"psicoclinica-server/internal/realtime"
	"psicoclinica-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMessageNotFound         = errors.New("contact message not found")
	ErrMessageAlreadyResponded = errors.New("contact message already has a reply")
)

type MessageUsecase interface {
	SubmitContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error)
	GetMessages(ctx context.Context) (*dto.ContactMessageListResponse, error)
	ReplyToMessage(ctx context.Context, messageID uuid.UUID, responseMessage string) (*dto.ContactMessageResponse, error)
}

type messageUsecase struct {
	log          *logrus.Logger
	messageRepo  repository.ContactMessageRepository
	auditService service.AuditService
	hub          *realtime.Hub
}

func NewMessageUsecase(
	log *logrus.Logger,
	messageRepo repository.ContactMessageRepository,
	auditService service.AuditService,
	hub *realtime.Hub,
) MessageUsecase {
	return &messageUsecase{
		log:          log,
		messageRepo:  messageRepo,
		auditService: auditService,
		hub:          hub,
	}
}

// SubmitContactMessage records a message from the public contact form.
func (u *messageUsecase) SubmitContactMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := u.messageRepo.Create(ctx, message); err != nil {
		u.log.Warnf("Failed to create contact message: %+v", err)
		return nil, err
	}

	u.hub.Publish(ctx, realtime.Event{
		Table:    realtime.TopicContactMessages,
		Action:   realtime.ActionInsert,
		RecordID: message.ID.String(),
	})

	return converter.ContactMessageToResponse(message), nil
}

// GetMessages lists every contact message, newest first.
func (u *messageUsecase) GetMessages(ctx context.Context) (*dto.ContactMessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list contact messages: %+v", err)
		return nil, err
	}

	return &dto.ContactMessageListResponse{
		Messages: converter.ContactMessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

// ReplyToMessage writes the single reply onto a message. The write is
// conditional on no reply existing yet, so a second reply loses even
// when two staff members race; at most one reply per message, ever.
func (u *messageUsecase) ReplyToMessage(ctx context.Context, messageID uuid.UUID, responseMessage string) (*dto.ContactMessageResponse, error) {
	psychologistID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	message, err := u.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		u.log.Warnf("Failed to find contact message %s: %+v", messageID, err)
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	if message.IsResponded() {
		return nil, ErrMessageAlreadyResponded
	}

	respondedAt := time.Now()
	affected, err := u.messageRepo.Reply(ctx, messageID, responseMessage, psychologistID, respondedAt)
	if err != nil {
		u.log.Warnf("Failed to reply to contact message %s: %+v", messageID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrMessageAlreadyResponded
	}

	message.ResponseMessage = &responseMessage
	message.RespondedBy = &psychologistID
	message.RespondedAt = &respondedAt

	u.auditService.RecordMessageReply(ctx, psychologistID, message)

	u.hub.Publish(ctx, realtime.Event{
		Table:    realtime.TopicContactMessages,
		Action:   realtime.ActionUpdate,
		RecordID: message.ID.String(),
	})

	u.log.Infof("Contact message %s answered by %s", messageID, psychologistID)
	return converter.ContactMessageToResponse(message), nil
}
