package usecases

import (
	"context"
	"time"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/organization"
	"rosterd/internal/domain/roster"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/metrics"
)

type OpenEventCommand struct {
	OrgID            uint
	InitiatedBy      uint
	ScheduledShiftID uint
	ReasonID         *uint
	ReasonText       *string
	ClassificationID *uint
}

type OpenEventResult struct {
	EventID          uint
	ScheduledShiftID uint
	Status           string
	CreatedAt        time.Time
}

type OpenEventUseCase struct {
	eventRepo callout.EventRepository
	shiftRepo roster.ShiftRepository
	orgRepo   organization.Repository
	logger    logger.Interface
}

func NewOpenEventUseCase(
	eventRepo callout.EventRepository,
	shiftRepo roster.ShiftRepository,
	orgRepo organization.Repository,
	logger logger.Interface,
) *OpenEventUseCase {
	return &OpenEventUseCase{
		eventRepo: eventRepo,
		shiftRepo: shiftRepo,
		orgRepo:   orgRepo,
		logger:    logger,
	}
}

func (uc *OpenEventUseCase) Execute(ctx context.Context, cmd OpenEventCommand) (*OpenEventResult, error) {
	uc.logger.Infow("opening callout event",
		"org_id", cmd.OrgID,
		"scheduled_shift_id", cmd.ScheduledShiftID,
		"initiated_by", cmd.InitiatedBy)

	shift, err := uc.shiftRepo.GetContext(ctx, cmd.ScheduledShiftID, cmd.OrgID)
	if err != nil {
		uc.logger.Errorw("failed to load shift", "error", err)
		return nil, errors.NewInternalError("failed to load scheduled shift")
	}
	if shift == nil {
		return nil, errors.NewNotFoundError("scheduled shift not found")
	}

	if cmd.ReasonID != nil {
		reason, err := uc.orgRepo.GetOTReason(ctx, *cmd.ReasonID, cmd.OrgID)
		if err != nil {
			uc.logger.Errorw("failed to load OT reason", "error", err)
			return nil, errors.NewInternalError("failed to load OT reason")
		}
		if reason == nil {
			return nil, errors.NewNotFoundError("OT reason not found")
		}
	}

	if cmd.ClassificationID != nil {
		classification, err := uc.orgRepo.GetClassification(ctx, *cmd.ClassificationID, cmd.OrgID)
		if err != nil {
			uc.logger.Errorw("failed to load classification", "error", err)
			return nil, errors.NewInternalError("failed to load classification")
		}
		if classification == nil {
			return nil, errors.NewNotFoundError("classification not found")
		}
	}

	event, err := callout.NewEvent(cmd.ScheduledShiftID, cmd.InitiatedBy, cmd.ReasonID, cmd.ReasonText, cmd.ClassificationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to create callout event", "error", err)
		return nil, errors.NewInternalError("failed to create callout event")
	}

	metrics.CalloutEventsOpened.Inc()
	uc.logger.Infow("callout event opened", "event_id", event.ID())

	return &OpenEventResult{
		EventID:          event.ID(),
		ScheduledShiftID: event.ScheduledShiftID(),
		Status:           event.Status().String(),
		CreatedAt:        event.CreatedAt(),
	}, nil
}
