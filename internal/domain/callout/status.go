package callout

// Status is the lifecycle state of a callout event. An event starts open
// and reaches at most one terminal state, never both and never reversed.
type Status string

const (
	StatusOpen      Status = "open"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusFilled || s == StatusCancelled
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsTerminal() bool {
	return s == StatusFilled || s == StatusCancelled
}

// CanTransitionTo reports whether the transition s -> target is legal.
// The only legal transitions are open -> filled and open -> cancelled.
func (s Status) CanTransitionTo(target Status) bool {
	if !s.IsOpen() {
		return false
	}
	return target == StatusFilled || target == StatusCancelled
}

// Response is the recorded outcome of contacting one candidate.
type Response string

const (
	ResponseAccepted Response = "accepted"
	ResponseDeclined Response = "declined"
	ResponseNoAnswer Response = "no_answer"
)

func (r Response) String() string {
	return string(r)
}

func (r Response) IsValid() bool {
	return r == ResponseAccepted || r == ResponseDeclined || r == ResponseNoAnswer
}

// ParseResponse validates a wire-level response string. Unknown values
// are rejected before any transactional work starts.
func ParseResponse(s string) (Response, bool) {
	r := Response(s)
	return r, r.IsValid()
}
