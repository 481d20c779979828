package usecases

import (
	"context"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/overtime"
	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/user"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/metrics"
)

type RecordAttemptCommand struct {
	OrgID      uint
	EventID    uint
	UserID     uint
	RecordedBy uint
	Response   string
	Notes      *string
}

type RecordAttemptResult struct {
	AttemptID    uint
	ListPosition int
	Response     string
	EventStatus  string
	HoursApplied float64
}

// RecordAttemptUseCase records one contact outcome. Everything from the
// event gate to the ledger write happens in a single transaction with
// the event row locked, so two supervisors recording at once serialize:
// the first acceptance fills the event and the second hits the closed
// gate and gets a conflict.
type RecordAttemptUseCase struct {
	txManager      TransactionManager
	eventRepo      callout.EventRepository
	attemptRepo    callout.AttemptRepository
	userRepo       user.Repository
	shiftRepo      roster.ShiftRepository
	ledger         overtime.LedgerRepository
	assignmentRepo roster.AssignmentRepository
	logger         logger.Interface
}

func NewRecordAttemptUseCase(
	txManager TransactionManager,
	eventRepo callout.EventRepository,
	attemptRepo callout.AttemptRepository,
	userRepo user.Repository,
	shiftRepo roster.ShiftRepository,
	ledger overtime.LedgerRepository,
	assignmentRepo roster.AssignmentRepository,
	logger logger.Interface,
) *RecordAttemptUseCase {
	return &RecordAttemptUseCase{
		txManager:      txManager,
		eventRepo:      eventRepo,
		attemptRepo:    attemptRepo,
		userRepo:       userRepo,
		shiftRepo:      shiftRepo,
		ledger:         ledger,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *RecordAttemptUseCase) Execute(ctx context.Context, cmd RecordAttemptCommand) (*RecordAttemptResult, error) {
	// Reject malformed input before any transactional work starts.
	response, ok := callout.ParseResponse(cmd.Response)
	if !ok {
		return nil, errors.NewBadRequestError("response must be accepted, declined or no_answer")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewBadRequestError("user ID is required")
	}

	var result *RecordAttemptResult

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

		target, err := uc.userRepo.GetActiveByID(txCtx, cmd.UserID, cmd.OrgID)
		if err != nil {
			uc.logger.Errorw("failed to load target user", "error", err)
			return errors.NewInternalError("failed to load user")
		}
		if target == nil {
			return errors.NewNotFoundError("user not found")
		}

		shift, err := uc.shiftRepo.GetContext(txCtx, event.ScheduledShiftID(), cmd.OrgID)
		if err != nil {
			uc.logger.Errorw("failed to load shift context", "error", err)
			return errors.NewInternalError("failed to load shift context")
		}
		if shift == nil {
			return errors.NewInternalError("callout event references a missing shift")
		}

		fiscalYear := biztime.FiscalYear(shift.Date)

		snapshot, err := uc.ledger.GeneralHoursWorked(txCtx, target.ID, fiscalYear)
		if err != nil {
			uc.logger.Errorw("failed to read ledger snapshot", "error", err)
			return errors.NewInternalError("failed to read overtime ledger")
		}

		count, err := uc.attemptRepo.CountByEvent(txCtx, event.ID())
		if err != nil {
			uc.logger.Errorw("failed to count attempts", "error", err)
			return errors.NewInternalError("failed to count attempts")
		}

		attempt, err := callout.NewAttempt(event.ID(), target.ID, count+1, response, snapshot, cmd.Notes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.attemptRepo.Create(txCtx, attempt); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("attempt position was taken by a concurrent request")
			}
			uc.logger.Errorw("failed to create attempt", "error", err)
			return errors.NewInternalError("failed to record attempt")
		}

		hours := shift.DurationHours()
		applied := 0.0

		switch response {
		case callout.ResponseAccepted:
			if err := event.Fill(); err != nil {
				return errors.NewConflictError(err.Error())
			}
			if err := uc.eventRepo.UpdateStatus(txCtx, event); err != nil {
				uc.logger.Errorw("failed to persist event fill", "error", err)
				return errors.NewInternalError("failed to update callout event")
			}
			if _, err := uc.assignmentRepo.FindOrCreateOvertime(txCtx, shift.ID, target.ID, cmd.RecordedBy); err != nil {
				uc.logger.Errorw("failed to ensure overtime assignment", "error", err)
				return errors.NewInternalError("failed to create overtime assignment")
			}
			if err := uc.accumulate(txCtx, uc.ledger.AccumulateWorked, target.ID, fiscalYear, event.ClassificationID(), hours); err != nil {
				return err
			}
			applied = hours

		case callout.ResponseDeclined:
			if err := uc.accumulate(txCtx, uc.ledger.AccumulateDeclined, target.ID, fiscalYear, event.ClassificationID(), hours); err != nil {
				return err
			}
			applied = hours

		case callout.ResponseNoAnswer:
			// attempt row only
		}

		result = &RecordAttemptResult{
			AttemptID:    attempt.ID(),
			ListPosition: attempt.ListPosition(),
			Response:     response.String(),
			EventStatus:  event.Status().String(),
			HoursApplied: applied,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CalloutAttemptsRecorded.WithLabelValues(result.Response).Inc()
	switch response {
	case callout.ResponseAccepted:
		metrics.CalloutEventsClosed.WithLabelValues("filled").Inc()
		metrics.CalloutAttemptsToFill.Observe(float64(result.ListPosition))
		metrics.OvertimeHoursAccumulated.WithLabelValues("worked").Add(result.HoursApplied)
	case callout.ResponseDeclined:
		metrics.OvertimeHoursAccumulated.WithLabelValues("declined").Add(result.HoursApplied)
	}

	uc.logger.Infow("callout attempt recorded",
		"event_id", cmd.EventID,
		"user_id", cmd.UserID,
		"position", result.ListPosition,
		"response", result.Response)

	return result, nil
}

type accumulateFunc func(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error

// accumulate writes the general ledger row and, when the event targets a
// classification, that classification's row as well. Ranking reads only
// the general row; the classification row is reporting data.
func (uc *RecordAttemptUseCase) accumulate(ctx context.Context, fn accumulateFunc, userID uint, fiscalYear int, classificationID *uint, hours float64) error {
	if err := fn(ctx, userID, fiscalYear, nil, hours); err != nil {
		uc.logger.Errorw("failed to accumulate ledger hours", "error", err)
		return errors.NewInternalError("failed to update overtime ledger")
	}
	if classificationID != nil {
		if err := fn(ctx, userID, fiscalYear, classificationID, hours); err != nil {
			uc.logger.Errorw("failed to accumulate classification ledger hours", "error", err)
			return errors.NewInternalError("failed to update overtime ledger")
		}
	}
	return nil
}
