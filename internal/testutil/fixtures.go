package testutil

import (
	"time"

	"github.com/alexanderramin/sleeplog/internal/allocator"
	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/google/uuid"
)

// At returns a minute-precision local wall-clock time.
func At(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

// SessionOption customizes NewTestSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	id string
}

func WithSessionID(id string) SessionOption {
	return func(c *sessionConfig) {
		c.id = id
	}
}

// NewTestSession allocates a session over [bed, wake) with a fresh id.
func NewTestSession(bed, wake time.Time, opts ...SessionOption) []domain.SleepDayEntry {
	cfg := sessionConfig{id: uuid.New().String()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return allocator.Allocate(cfg.id, bed, wake)
}
