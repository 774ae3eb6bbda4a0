package persistence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// legacySessionNamespace seeds the v5 ids given to entries stored before
// sessions had explicit ids.
var legacySessionNamespace = uuid.MustParse("6f1c3a52-9d0e-4b7a-a0b3-5d2e8c4f1a90")

// Encode serializes the full entry list. An empty ledger encodes as "[]".
func Encode(entries []domain.SleepDayEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.SleepDayEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding sleep ledger: %w", err)
	}
	return data, nil
}

// Decode parses a stored entry list. Entries without a session id get one
// derived from their (bedDateTime, wakeDateTime) pair, so entries of the same
// legacy session land in the same session.
func Decode(data []byte) ([]domain.SleepDayEntry, error) {
	var entries []domain.SleepDayEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding sleep ledger: %w", err)
	}
	for i := range entries {
		if entries[i].SessionID == "" {
			entries[i].SessionID = LegacySessionID(entries[i].BedDateTime, entries[i].WakeDateTime)
		}
	}
	return entries, nil
}

// LegacySessionID derives a stable session id from a session's timestamps.
func LegacySessionID(bed, wake time.Time) string {
	key := bed.UTC().Format(time.RFC3339Nano) + "|" + wake.UTC().Format(time.RFC3339Nano)
	return uuid.NewSHA1(legacySessionNamespace, []byte(key)).String()
}
