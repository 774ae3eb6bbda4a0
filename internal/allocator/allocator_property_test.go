package allocator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocate_Invariants property-tests the allocation over random
// minute-granular sessions of up to three days.
func TestAllocate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 500; trial++ {
		bed := base.Add(time.Duration(rng.Intn(60*24*365)) * time.Minute)
		wake := bed.Add(time.Duration(rng.Intn(60*72)+1) * time.Minute)
		entries := Allocate("s", bed, wake)
		require.NotEmpty(t, entries, "trial %d", trial)

		// Sum identity.
		var sum float64
		for _, e := range entries {
			sum += e.Hours
		}
		assert.InDelta(t, wake.Sub(bed).Hours(), sum, 0.01,
			"trial %d: hours must sum to the session duration", trial)
		assert.InDelta(t, entries[0].TotalSleepHours, sum, 1e-9,
			"trial %d: hours must sum to the stored total", trial)

		// Day monotonicity.
		for i := 1; i < len(entries); i++ {
			prev, err := domain.ParseDay(entries[i-1].Date)
			require.NoError(t, err)
			assert.Equal(t, prev.Next().String(), entries[i].Date,
				"trial %d: dates must advance one day at a time", trial)
		}

		// Type classification.
		n := len(entries)
		if n == 1 {
			assert.Equal(t, domain.SleepFull, entries[0].SleepType, "trial %d", trial)
		} else {
			assert.Equal(t, domain.SleepStart, entries[0].SleepType, "trial %d", trial)
			assert.Equal(t, domain.SleepEnd, entries[n-1].SleepType, "trial %d", trial)
			for _, e := range entries[1 : n-1] {
				assert.Equal(t, domain.SleepMiddle, e.SleepType, "trial %d", trial)
			}
		}

		// Every allocation is strictly positive and shares the session key.
		for _, e := range entries {
			assert.Greater(t, e.Hours, 0.0, "trial %d", trial)
			assert.True(t, e.BedDateTime.Equal(bed))
			assert.True(t, e.WakeDateTime.Equal(wake))
		}
	}
}
