package usecases

import (
	"context"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/roster"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/metrics"
)

type ComputeListQuery struct {
	OrgID   uint
	EventID uint
}

type ComputeListResult struct {
	Event      *callout.Event
	Shift      *roster.ShiftContext
	Candidates []callout.RankedCandidate
}

// ComputeListUseCase builds the ranked contact list for an event. The
// list is recomputed from current data on every request and is never
// stored; only recorded attempts freeze history.
type ComputeListUseCase struct {
	eventRepo callout.EventRepository
	shiftRepo roster.ShiftRepository
	reader    callout.CandidateReader
	logger    logger.Interface
}

func NewComputeListUseCase(
	eventRepo callout.EventRepository,
	shiftRepo roster.ShiftRepository,
	reader callout.CandidateReader,
	logger logger.Interface,
) *ComputeListUseCase {
	return &ComputeListUseCase{
		eventRepo: eventRepo,
		shiftRepo: shiftRepo,
		reader:    reader,
		logger:    logger,
	}
}

func (uc *ComputeListUseCase) Execute(ctx context.Context, query ComputeListQuery) (*ComputeListResult, error) {
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
	if shift == nil {
		return nil, errors.NewInternalError("callout event references a missing shift")
	}

	candidates, err := uc.reader.ListCandidates(ctx, query.OrgID, shift.ID, shift.Date, event.ClassificationID())
	if err != nil {
		uc.logger.Errorw("failed to load candidates", "error", err)
		return nil, errors.NewInternalError("failed to load candidates")
	}

	ranked := callout.Rank(candidates)
	metrics.RankingComputations.Inc()

	uc.logger.Debugw("callout list computed",
		"event_id", event.ID(),
		"candidates", len(ranked))

	return &ComputeListResult{
		Event:      event,
		Shift:      shift,
		Candidates: ranked,
	}, nil
}
