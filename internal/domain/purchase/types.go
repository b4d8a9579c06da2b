package purchase

import "strings"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	d := Decision(strings.ToLower(strings.TrimSpace(s)))
	if d != DecisionApprove && d != DecisionReject {
		return "", ErrInvalidDecision
	}
	return d, nil
}

func (d Decision) String() string {
	return string(d)
}

// TargetStatus is the status a pending request moves to under this decision.
func (d Decision) TargetStatus() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// PastTense is used in notification and response text.
func (d Decision) PastTense() string {
	if d == DecisionApprove {
		return "approved"
	}
	return "rejected"
}
