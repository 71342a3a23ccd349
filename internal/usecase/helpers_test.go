package usecase

import (
	"context"
	"io"

	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/realtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHub() *realtime.Hub {
	return realtime.NewHub(nil, newTestLogger())
}

func authedContext(userID uuid.UUID, email, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, email)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return context.WithValue(ctx, middleware.TokenIDKey, uuid.New().String())
}
