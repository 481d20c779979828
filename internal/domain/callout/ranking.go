package callout

import (
	"sort"
	"time"
)

// Unavailability reasons surfaced on the callout list. When a candidate
// is both assigned and on leave, "Already scheduled" wins.
const (
	ReasonAlreadyScheduled = "Already scheduled"
	ReasonOnApprovedLeave  = "On approved leave"
)

// Candidate is the ranking engine's view of one active employee at the
// moment the list is computed: ledger hours, seniority, and availability
// facts against the shift being covered.
type Candidate struct {
	UserID             uint
	EmployeeID         *string
	FirstName          string
	LastName           string
	ClassificationAbbr *string
	SeniorityDate      *time.Time
	OTHours            float64
	AlreadyAssigned    bool
	OnApprovedLeave    bool
}

// Available reports whether the candidate can be offered the shift.
func (c Candidate) Available() bool {
	return !c.AlreadyAssigned && !c.OnApprovedLeave
}

// UnavailableReason returns the display reason for an unavailable
// candidate, or empty for an available one.
func (c Candidate) UnavailableReason() string {
	switch {
	case c.AlreadyAssigned:
		return ReasonAlreadyScheduled
	case c.OnApprovedLeave:
		return ReasonOnApprovedLeave
	default:
		return ""
	}
}

// RankedCandidate is a candidate with its computed 1-based contact-order
// position. Positions are recomputed on every request and are advisory;
// the authoritative record of the position a candidate was actually
// contacted at lives on the Attempt.
type RankedCandidate struct {
	Position int
	Candidate
}

// Rank orders candidates for overtime contact:
//
//  1. available candidates before unavailable ones
//  2. fewer current-year OT hours worked first (equalization)
//  3. earlier seniority date first; no seniority date sorts last
//  4. lower user ID first, so the order is a deterministic total order
//
// The input slice is not modified.
func Rank(candidates []Candidate) []RankedCandidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.Available() != b.Available() {
			return a.Available()
		}
		if a.OTHours != b.OTHours {
			return a.OTHours < b.OTHours
		}
		if c := compareSeniority(a.SeniorityDate, b.SeniorityDate); c != 0 {
			return c < 0
		}
		return a.UserID < b.UserID
	})

	ranked := make([]RankedCandidate, len(sorted))
	for i, c := range sorted {
		ranked[i] = RankedCandidate{Position: i + 1, Candidate: c}
	}
	return ranked
}

// compareSeniority orders seniority dates ascending with nil last.
func compareSeniority(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
