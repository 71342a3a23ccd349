package usecase

import (
	"context"

	"psicoclinica-server/internal/converter"
	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/delivery/http/middleware"
	"psicoclinica-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ActivityUsecase interface {
	GetMyActivity(ctx context.Context) (*dto.ActivityListResponse, error)
}

type activityUsecase struct {
	log        *logrus.Logger
	actionRepo repository.PsychologistActionRepository
}

func NewActivityUsecase(log *logrus.Logger, actionRepo repository.PsychologistActionRepository) ActivityUsecase {
	return &activityUsecase{
		log:        log,
		actionRepo: actionRepo,
	}
}

// GetMyActivity returns the acting staff member's audit trail, newest
// first.
func (u *activityUsecase) GetMyActivity(ctx context.Context) (*dto.ActivityListResponse, error) {
	psychologistID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	actions, err := u.actionRepo.FindByPsychologistID(ctx, psychologistID)
	if err != nil {
		u.log.Warnf("Failed to load activity for %s: %+v", psychologistID, err)
		return nil, err
	}

	return &dto.ActivityListResponse{
		Actions: converter.PsychologistActionsToResponses(actions),
		Total:   len(actions),
	}, nil
}
