package usecases

import (
	"context"

	"rosterd/internal/domain/callout"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
)

type ListEventsQuery struct {
	OrgID  uint
	Limit  int
	Offset int
}

type ListEventsResult struct {
	Events []*callout.Event
}

type ListEventsUseCase struct {
	eventRepo callout.EventRepository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo callout.EventRepository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error) {
	events, err := uc.eventRepo.List(ctx, query.OrgID, query.Limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list callout events", "error", err)
		return nil, errors.NewInternalError("failed to list callout events")
	}

	return &ListEventsResult{Events: events}, nil
}
