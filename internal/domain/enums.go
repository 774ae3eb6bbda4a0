package domain

type SleepType string

const (
	SleepFull   SleepType = "full"
	SleepStart  SleepType = "start"
	SleepMiddle SleepType = "middle"
	SleepEnd    SleepType = "end"
)

// ValidSleepTypes is the canonical set of accepted sleepType strings.
var ValidSleepTypes = map[SleepType]bool{
	SleepFull: true, SleepStart: true, SleepMiddle: true, SleepEnd: true,
}

type ViolationKind string

const (
	ViolationFutureBedtime       ViolationKind = "FUTURE_BEDTIME"
	ViolationWakeTimeTooFar      ViolationKind = "WAKE_TIME_TOO_FAR"
	ViolationNonPositiveDuration ViolationKind = "NON_POSITIVE_DURATION"
	ViolationDurationTooLong     ViolationKind = "DURATION_TOO_LONG"
)
