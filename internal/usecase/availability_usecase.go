package usecase

import (
	"context"
	"time"

	"psicoclinica-server/internal/delivery/dto"
	"psicoclinica-server/internal/domain/entity"
	"psicoclinica-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AvailabilityUsecase interface {
	GetEligibleDates() *dto.AvailableDatesResponse
	GetAvailableTimes(ctx context.Context, psychologist, date string) *dto.AvailabilityResponse
}

type availabilityUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AvailabilityUsecase {
	return &availabilityUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// GetEligibleDates returns the bookable dates: the next 14 calendar days
// after today, weekends excluded.
func (u *availabilityUsecase) GetEligibleDates() *dto.AvailableDatesResponse {
	return &dto.AvailableDatesResponse{Dates: entity.EligibleDates(time.Now())}
}

// GetAvailableTimes returns the slot template minus the times already
// booked for the exact (psychologist, date) pair. With either input
// unset the result is empty, which forces callers to keep the time
// selection disabled. A lookup failure degrades to an empty result; it
// is never a blocking error.
func (u *availabilityUsecase) GetAvailableTimes(ctx context.Context, psychologist, date string) *dto.AvailabilityResponse {
	resp := &dto.AvailabilityResponse{
		Psychologist: psychologist,
		Date:         date,
		Times:        []string{},
	}

	if psychologist == "" || date == "" {
		return resp
	}
	if d, err := time.Parse("2006-01-02", date); err != nil || d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return resp
	}

	booked, err := u.appointmentRepo.FindBookedTimes(ctx, psychologist, date)
	if err != nil {
		u.log.Warnf("Failed to load booked times for %s on %s: %+v", psychologist, date, err)
		return resp
	}

	resp.Times = entity.AvailableSlots(booked)
	return resp
}
