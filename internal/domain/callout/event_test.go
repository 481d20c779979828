package callout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openEvent(t *testing.T) *Event {
	t.Helper()
	ev, err := NewEvent(10, 5, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, StatusOpen, ev.Status())
	return ev
}

func TestNewEventValidation(t *testing.T) {
	_, err := NewEvent(0, 5, nil, nil, nil)
	assert.Error(t, err)

	_, err = NewEvent(10, 0, nil, nil, nil)
	assert.Error(t, err)
}

func TestEventFill(t *testing.T) {
	ev := openEvent(t)

	require.NoError(t, ev.Fill())
	assert.Equal(t, StatusFilled, ev.Status())

	// Terminal states absorb every further transition.
	assert.Error(t, ev.Fill())
	assert.Error(t, ev.Cancel())
	assert.Equal(t, StatusFilled, ev.Status())
}

func TestEventCancel(t *testing.T) {
	ev := openEvent(t)

	require.NoError(t, ev.Cancel())
	assert.Equal(t, StatusCancelled, ev.Status())

	assert.Error(t, ev.Cancel())
	assert.Error(t, ev.Fill())
	assert.Equal(t, StatusCancelled, ev.Status())
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusOpen.CanTransitionTo(StatusFilled))
	assert.True(t, StatusOpen.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusFilled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusFilled.CanTransitionTo(StatusOpen))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusFilled))
	assert.False(t, StatusOpen.CanTransitionTo(StatusOpen))
}

func TestParseResponse(t *testing.T) {
	for _, valid := range []string{"accepted", "declined", "no_answer"} {
		r, ok := ParseResponse(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, r.String())
	}

	for _, invalid := range []string{"", "maybe", "ACCEPTED", "no answer"} {
		_, ok := ParseResponse(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestReconstructEvent(t *testing.T) {
	now := time.Now().UTC()
	ev, err := ReconstructEvent(3, 10, 5, nil, nil, nil, StatusFilled, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ev.ID())
	assert.Equal(t, StatusFilled, ev.Status())

	_, err = ReconstructEvent(0, 10, 5, nil, nil, nil, StatusOpen, now, now)
	assert.Error(t, err)

	_, err = ReconstructEvent(3, 10, 5, nil, nil, nil, Status("pending"), now, now)
	assert.Error(t, err)
}

func TestNewAttemptValidation(t *testing.T) {
	notes := "left voicemail"

	a, err := NewAttempt(1, 2, 1, ResponseNoAnswer, 12.5, &notes)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ListPosition())
	assert.Equal(t, 12.5, a.OTHoursAtContact())

	_, err = NewAttempt(1, 2, 0, ResponseAccepted, 0, nil)
	assert.Error(t, err)

	_, err = NewAttempt(1, 2, 1, Response("busy"), 0, nil)
	assert.Error(t, err)

	_, err = NewAttempt(1, 2, 1, ResponseAccepted, -1, nil)
	assert.Error(t, err)
}
