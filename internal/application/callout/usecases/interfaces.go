package usecases

import "context"

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type OpenEventExecutor interface {
	Execute(ctx context.Context, cmd OpenEventCommand) (*OpenEventResult, error)
}

type GetEventExecutor interface {
	Execute(ctx context.Context, query GetEventQuery) (*EventDetail, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error)
}

type ComputeListExecutor interface {
	Execute(ctx context.Context, query ComputeListQuery) (*ComputeListResult, error)
}

type RecordAttemptExecutor interface {
	Execute(ctx context.Context, cmd RecordAttemptCommand) (*RecordAttemptResult, error)
}

type CancelEventExecutor interface {
	Execute(ctx context.Context, cmd CancelEventCommand) (*CancelEventResult, error)
}
