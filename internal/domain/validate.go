package domain

import "time"

// MaxSessionDuration is the longest sleep session that can be recorded.
const MaxSessionDuration = 24 * time.Hour

// ValidationError reports which session rule a proposed bedtime/wake time pair
// broke and which field the caller should point the user at.
type ValidationError struct {
	Kind    ViolationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrFutureBedtime = &ValidationError{
		Kind:    ViolationFutureBedtime,
		Field:   "bed",
		Message: "bedtime cannot be later than today",
	}
	ErrWakeTimeTooFar = &ValidationError{
		Kind:    ViolationWakeTimeTooFar,
		Field:   "wake",
		Message: "wake time cannot be later than tomorrow",
	}
	ErrNonPositiveDuration = &ValidationError{
		Kind:    ViolationNonPositiveDuration,
		Field:   "wake",
		Message: "wake time must be after bedtime",
	}
	ErrDurationTooLong = &ValidationError{
		Kind:    ViolationDurationTooLong,
		Field:   "wake",
		Message: "a sleep session cannot be longer than 24 hours",
	}
)

// ValidateSession checks a proposed session against now. Rules are checked in
// order and the first failure is returned; nil means the session is accepted.
// Day boundaries are taken in now's location.
func ValidateSession(bed, wake, now time.Time) error {
	loc := now.Location()
	today := DayOf(now)

	if bed.After(today.End(loc)) {
		return ErrFutureBedtime
	}
	if wake.After(today.Next().End(loc)) {
		return ErrWakeTimeTooFar
	}
	if !wake.After(bed) {
		return ErrNonPositiveDuration
	}
	if wake.Sub(bed) > MaxSessionDuration {
		return ErrDurationTooLong
	}
	return nil
}
