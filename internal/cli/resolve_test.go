package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/alexanderramin/sleeplog/internal/service"
	"github.com/alexanderramin/sleeplog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entriesOnly is a SleepService stub that only serves Entries.
type entriesOnly struct {
	service.SleepService
	entries []domain.SleepDayEntry
}

func (s entriesOnly) Entries(context.Context) []domain.SleepDayEntry { return s.entries }

func TestResolveSessionID(t *testing.T) {
	var entries []domain.SleepDayEntry
	for _, id := range []string{"abcd1234-aaaa", "abcd9999-bbbb", "ef012345-cccc", "LEGACY-ID"} {
		entries = append(entries, testutil.NewTestSession(
			testutil.At(2024, time.January, 10, 13, 0),
			testutil.At(2024, time.January, 10, 14, 0),
			testutil.WithSessionID(id))...)
	}
	app := &App{Sleep: entriesOnly{entries: entries}}
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "exact", input: "abcd1234-aaaa", want: "abcd1234-aaaa"},
		{name: "unique prefix", input: "abcd1", want: "abcd1234-aaaa"},
		{name: "case-insensitive prefix", input: "EF01", want: "ef012345-cccc"},
		{name: "mixed-case id", input: "legacy", want: "LEGACY-ID"},
		{name: "surrounding space", input: "  ef012345-cccc ", want: "ef012345-cccc"},
		{name: "ambiguous prefix", input: "abcd", wantErr: "ambiguous (2 matches)"},
		{name: "too short", input: "ab", wantErr: "too short"},
		{name: "empty", input: " ", wantErr: "required"},
		{name: "unknown", input: "9999", wantErr: ledger.ErrSessionNotFound.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSessionID(ctx, app, tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeValue(t *testing.T) {
	var v timeValue
	assert.Equal(t, "", v.String())
	assert.Equal(t, "datetime", v.Type())

	require.NoError(t, v.Set("2024-01-10 23:05"))
	assert.Equal(t, time.Date(2024, time.January, 10, 23, 5, 0, 0, time.Local), v.t)
	assert.Equal(t, "2024-01-10 23:05", v.String())

	require.NoError(t, v.Set("2024-01-10 23:05:30"))
	assert.Equal(t, 30, v.t.Second())

	assert.Error(t, v.Set("23:05"))
}

func TestDayValue(t *testing.T) {
	var v dayValue
	assert.Equal(t, "date", v.Type())
	require.NoError(t, v.Set("2024-02-29"))
	assert.Equal(t, domain.NewDay(2024, time.February, 29), v.d)
	assert.Error(t, v.Set("2023-02-29"))
}

func TestSessionPickerOffersEveryCandidate(t *testing.T) {
	night := testutil.NewTestSession(
		testutil.At(2024, time.January, 9, 23, 0),
		testutil.At(2024, time.January, 10, 7, 0),
		testutil.WithSessionID("night"))
	nap := testutil.NewTestSession(
		testutil.At(2024, time.January, 10, 13, 0),
		testutil.At(2024, time.January, 10, 14, 0),
		testutil.WithSessionID("nap"))

	ambiguous := &ledger.AmbiguousDayError{
		Date:       "2024-01-10",
		Candidates: []domain.SleepDayEntry{night[1], nap[0]},
	}
	options := candidateOptions(ambiguous)
	require.Len(t, options, 2)
	assert.Equal(t, "night", options[0].Value)
	assert.Contains(t, options[0].Key, "Jan 9 23:00 → Jan 10 07:00")
	assert.Equal(t, "nap", options[1].Value)
	assert.Contains(t, options[1].Key, "13:00 → 14:00")

	var picked string
	assert.NotNil(t, newSessionPicker(ambiguous, &picked))
}
