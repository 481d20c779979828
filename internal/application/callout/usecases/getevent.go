package usecases

import (
	"context"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/roster"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
)

type GetEventQuery struct {
	OrgID   uint
	EventID uint
}

// EventDetail is an event with its shift context and full attempt log.
type EventDetail struct {
	Event    *callout.Event
	Shift    *roster.ShiftContext
	Attempts []*callout.Attempt
}

type GetEventUseCase struct {
	eventRepo   callout.EventRepository
	attemptRepo callout.AttemptRepository
	shiftRepo   roster.ShiftRepository
	logger      logger.Interface
}

func NewGetEventUseCase(
	eventRepo callout.EventRepository,
	attemptRepo callout.AttemptRepository,
	shiftRepo roster.ShiftRepository,
	logger logger.Interface,
) *GetEventUseCase {
	return &GetEventUseCase{
		eventRepo:   eventRepo,
		attemptRepo: attemptRepo,
		shiftRepo:   shiftRepo,
		logger:      logger,
	}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, query GetEventQuery) (*EventDetail, error) {
	event, err := uc.eventRepo.GetByID(ctx, query.EventID, query.OrgID)
	if err != nil {
		uc.logger.Errorw("failed to load callout event", "error", err)
		return nil, errors.NewInternalError("failed to load callout event")
	}
	if event == nil {
		return nil, errors.NewNotFoundError("callout event not found")
	}

	shift, err := uc.shiftRepo.GetContext(ctx, event.ScheduledShiftID(), query.OrgID)
	if err != nil {
		uc.logger.Errorw("failed to load shift context", "error", err)
		return nil, errors.NewInternalError("failed to load shift context")
	}

	attempts, err := uc.attemptRepo.ListByEvent(ctx, event.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attempts", "error", err)
		return nil, errors.NewInternalError("failed to load attempts")
	}

	return &EventDetail{
		Event:    event,
		Shift:    shift,
		Attempts: attempts,
	}, nil
}
