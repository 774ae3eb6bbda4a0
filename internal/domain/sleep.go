package domain

import (
	"math"
	"time"
)

// ClockLayout is the HH:MM layout of the bedTime/wakeTime display fields.
const ClockLayout = "15:04"

// SleepDayEntry is the share of one sleep session allocated to a single
// calendar day. Every entry of a session carries the whole session's
// timestamps and total.
type SleepDayEntry struct {
	SessionID       string    `json:"sessionId"`
	Date            string    `json:"date"`
	BedTime         string    `json:"bedTime"`
	WakeTime        string    `json:"wakeTime"`
	BedDateTime     time.Time `json:"bedDateTime"`
	WakeDateTime    time.Time `json:"wakeDateTime"`
	Hours           float64   `json:"hours"`
	TotalSleepHours float64   `json:"totalSleepHours"`
	SleepType       SleepType `json:"sleepType"`
}

// Duration is the length of the whole session the entry belongs to.
func (e SleepDayEntry) Duration() time.Duration {
	return e.WakeDateTime.Sub(e.BedDateTime)
}

// RoundHours rounds to two decimals, the precision entries are stored at.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
