package allocator

import (
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
)

// Allocate splits the session [bed, wake) into one entry per calendar day it
// overlaps, oldest first. Day boundaries are local midnights in bed's location.
//
// Each day's hours are the difference of the rounded elapsed time at the end
// and at the start of its slice, so the stored (2-decimal) hours always sum
// to the stored total. Days whose rounded share is zero are not emitted.
// Allocate does not validate; an empty or inverted interval yields nil.
func Allocate(sessionID string, bed, wake time.Time) []domain.SleepDayEntry {
	if !wake.After(bed) {
		return nil
	}
	loc := bed.Location()
	wake = wake.In(loc)

	totalHours := elapsedHours(bed, wake)
	bedClock := bed.Format(domain.ClockLayout)
	wakeClock := wake.Format(domain.ClockLayout)

	var entries []domain.SleepDayEntry
	for day := domain.DayOf(bed); day.Start(loc).Before(wake); day = day.Next() {
		dayStart := day.Start(loc)
		dayEnd := day.Next().Start(loc)

		from, to := overlap(dayStart, dayEnd, bed, wake)
		if !to.After(from) {
			continue
		}
		hours := domain.RoundHours(elapsedHours(bed, to) - elapsedHours(bed, from))
		if hours <= 0 {
			continue
		}

		entries = append(entries, domain.SleepDayEntry{
			SessionID:       sessionID,
			Date:            day.String(),
			BedTime:         bedClock,
			WakeTime:        wakeClock,
			BedDateTime:     bed,
			WakeDateTime:    wake,
			Hours:           hours,
			TotalSleepHours: totalHours,
			SleepType:       Classify(bed, wake, dayStart, dayEnd),
		})
	}
	return entries
}

// Classify returns the position of the day [dayStart, dayEnd) within the
// session [bed, wake). A wake time exactly at dayEnd still counts as inside:
// a session that ends at midnight has no sleep on the following day.
func Classify(bed, wake, dayStart, dayEnd time.Time) domain.SleepType {
	bedInside := !bed.Before(dayStart) && bed.Before(dayEnd)
	wakeInside := wake.After(dayStart) && !wake.After(dayEnd)

	switch {
	case bedInside && wakeInside:
		return domain.SleepFull
	case bedInside:
		return domain.SleepStart
	case wakeInside:
		return domain.SleepEnd
	default:
		return domain.SleepMiddle
	}
}

// overlap intersects [aStart, aEnd) with [bStart, bEnd). The result is empty
// (to <= from) when they do not intersect.
func overlap(aStart, aEnd, bStart, bEnd time.Time) (from, to time.Time) {
	from = aStart
	if bStart.After(from) {
		from = bStart
	}
	to = aEnd
	if bEnd.Before(to) {
		to = bEnd
	}
	return from, to
}

func elapsedHours(bed, t time.Time) float64 {
	return domain.RoundHours(t.Sub(bed).Hours())
}
