package models

import "github.com/pkg/errors"

type ApplicationStatus string

const (
	ApplicationStatusApplied      ApplicationStatus = "Applied"
	ApplicationStatusUnderReview  ApplicationStatus = "Under Review"
	ApplicationStatusInterviewing ApplicationStatus = "Interviewing"
	ApplicationStatusOffered      ApplicationStatus = "Offer Received"
	ApplicationStatusRejected     ApplicationStatus = "Rejected"
)

// ApplicationStatusAll is the filter value selecting every status.
const ApplicationStatusAll = "all"

// ApplicationStatusOrder is the column order of the "by status" view.
var ApplicationStatusOrder = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusUnderReview,
	ApplicationStatusInterviewing,
	ApplicationStatusOffered,
	ApplicationStatusRejected,
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:      {ApplicationStatusUnderReview, ApplicationStatusRejected},
	ApplicationStatusUnderReview:  {ApplicationStatusInterviewing, ApplicationStatusRejected},
	ApplicationStatusInterviewing: {ApplicationStatusOffered, ApplicationStatusRejected},
	ApplicationStatusOffered:      {},
	ApplicationStatusRejected:     {},
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}

// CanTransitionTo reports whether the status may move to next.
// Staying on the same status is always allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrValidation for unknown statuses and
// ErrIllegalTransition for pairs outside the transition table.
func (s ApplicationStatus) CheckTransition(next ApplicationStatus) error {
	if !next.IsValid() {
		return errors.Wrapf(ErrValidation, "unknown application status %q", next)
	}
	if !s.CanTransitionTo(next) {
		return errors.Wrapf(ErrIllegalTransition, "%s -> %s", s, next)
	}
	return nil
}
