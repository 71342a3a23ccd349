package usecase

import (
	"context"
	"testing"
	"time"

	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture(messages []entity.ContactMessage) (MessageUsecase, *stubMessageRepo, *stubActionRepo) {
	messageRepo := &stubMessageRepo{messages: messages}
	actionRepo := &stubActionRepo{}
	auditService := service.NewAuditService(newTestLogger(), actionRepo)
	u := NewMessageUsecase(newTestLogger(), messageRepo, auditService, newTestHub())
	return u, messageRepo, actionRepo
}

func TestSubmitContactMessage(t *testing.T) {
	u, messageRepo, _ := newMessageFixture(nil)

	resp, err := u.SubmitContactMessage(context.Background(), &dto.CreateContactMessageRequest{
		Name:    "Carlos Díaz",
		Email:   "carlos@example.com",
		Subject: "Horarios",
		Message: "¿Atienden por las tardes?",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.RespondedAt)
	require.Len(t, messageRepo.messages, 1)
	assert.Equal(t, "Horarios", messageRepo.messages[0].Subject)
}

func TestGetMessagesNewestFirst(t *testing.T) {
	now := time.Now()
	u, _, _ := newMessageFixture([]entity.ContactMessage{
		{ID: uuid.New(), Subject: "older", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Subject: "newest", CreatedAt: now},
		{ID: uuid.New(), Subject: "old", CreatedAt: now.Add(-time.Hour)},
	})

	resp, err := u.GetMessages(context.Background())

	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "newest", resp.Messages[0].Subject)
	assert.Equal(t, "older", resp.Messages[2].Subject)
}

func TestReplyToMessageWritesReplyOnceAndAudits(t *testing.T) {
	messageID := uuid.New()
	u, messageRepo, actionRepo := newMessageFixture([]entity.ContactMessage{
		{ID: messageID, Name: "Carlos Díaz", Email: "carlos@example.com", Subject: "Horarios"},
	})
	staffID := uuid.New()
	ctx := authedContext(staffID, "staff@example.com", entity.RolePsychologist)

	resp, err := u.ReplyToMessage(ctx, messageID, "Sí, de 15:00 a 18:00")

	require.NoError(t, err)
	require.NotNil(t, resp.RespondedAt)
	require.NotNil(t, resp.ResponseMessage)
	assert.Equal(t, "Sí, de 15:00 a 18:00", *resp.ResponseMessage)

	stored := messageRepo.messages[0]
	require.NotNil(t, stored.RespondedBy)
	assert.Equal(t, staffID, *stored.RespondedBy)
	require.NotNil(t, stored.RespondedAt)

	require.Len(t, actionRepo.actions, 1)
	action := actionRepo.actions[0]
	assert.Equal(t, entity.ActionRespondedMessage, action.ActionType)
	assert.Equal(t, "Horarios", action.Details["message_subject"])
	assert.Equal(t, "carlos@example.com", action.Details["patient_email"])
}

func TestReplyToMessageSecondReplyIsRejected(t *testing.T) {
	messageID := uuid.New()
	u, messageRepo, actionRepo := newMessageFixture([]entity.ContactMessage{
		{ID: messageID, Email: "carlos@example.com", Subject: "Horarios"},
	})
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	_, err := u.ReplyToMessage(ctx, messageID, "primera respuesta")
	require.NoError(t, err)

	_, err = u.ReplyToMessage(ctx, messageID, "segunda respuesta")
	assert.ErrorIs(t, err, ErrMessageAlreadyResponded)

	assert.Equal(t, "primera respuesta", *messageRepo.messages[0].ResponseMessage)
	assert.Len(t, actionRepo.actions, 1, "losing reply records no action")
}

func TestReplyToMessageNotFound(t *testing.T) {
	u, _, _ := newMessageFixture(nil)
	ctx := authedContext(uuid.New(), "staff@example.com", entity.RolePsychologist)

	_, err := u.ReplyToMessage(ctx, uuid.New(), "hola")

	assert.ErrorIs(t, err, ErrMessageNotFound)
}
