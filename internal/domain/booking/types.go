package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// CanTransition reports whether a booking in status s may move to target.
// Only pending bookings move, and only to a terminal status. Re-submitting
// the current status is allowed because the admin surface always writes the
// full record back.
func (s Status) CanTransition(target Status) bool {
	if !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	return s == StatusPending && target.IsTerminal()
}
