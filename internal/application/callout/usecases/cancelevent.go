package usecases

import (
	"context"
	"time"

	"rosterd/internal/domain/callout"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/metrics"
)

type CancelEventCommand struct {
	OrgID       uint
	EventID     uint
	CancelledBy uint
}

type CancelEventResult struct {
	EventID   uint
	Status    string
	UpdatedAt time.Time
}

// CancelEventUseCase cancels an open event under the event row lock.
// A non-open event in the caller's org is a conflict; an event in
// another org is indistinguishable from a missing one.
type CancelEventUseCase struct {
	txManager TransactionManager
	eventRepo callout.EventRepository
	logger    logger.Interface
}

func NewCancelEventUseCase(
	txManager TransactionManager,
	eventRepo callout.EventRepository,
	logger logger.Interface,
) *CancelEventUseCase {
	return &CancelEventUseCase{
		txManager: txManager,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *CancelEventUseCase) Execute(ctx context.Context, cmd CancelEventCommand) (*CancelEventResult, error) {
	var result *CancelEventResult

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		event, err := uc.eventRepo.GetByIDForUpdate(txCtx, cmd.EventID, cmd.OrgID)
		if err != nil {
			uc.logger.Errorw("failed to lock callout event", "error", err)
			return errors.NewInternalError("failed to load callout event")
		}
		if event == nil {
			return errors.NewNotFoundError("callout event not found")
		}
		if !event.Status().IsOpen() {
			return errors.NewConflictError("callout event is " + event.Status().String())
		}

		if err := event.Cancel(); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.eventRepo.UpdateStatus(txCtx, event); err != nil {
			uc.logger.Errorw("failed to persist event cancel", "error", err)
			return errors.NewInternalError("failed to update callout event")
		}

		result = &CancelEventResult{
			EventID:   event.ID(),
			Status:    event.Status().String(),
			UpdatedAt: event.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CalloutEventsClosed.WithLabelValues("cancelled").Inc()
	uc.logger.Infow("callout event cancelled",
		"event_id", cmd.EventID,
		"cancelled_by", cmd.CancelledBy)

	return result, nil
}
