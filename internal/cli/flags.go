package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/spf13/pflag"
)

// timeLayouts are the accepted --bed/--wake formats, all local wall-clock.
var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// timeValue is a pflag.Value holding a local timestamp.
type timeValue struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*timeValue)(nil)

func (v *timeValue) String() string {
	if !v.set {
		return ""
	}
	return v.t.Format(timeLayouts[0])
}

func (v *timeValue) Set(s string) error {
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			v.t, v.set = t, true
			return nil
		}
	}
	return fmt.Errorf("invalid time %q (expected \"YYYY-MM-DD HH:MM\")", s)
}

func (v *timeValue) Type() string { return "datetime" }

// dayValue is a pflag.Value holding a calendar day.
type dayValue struct {
	d   domain.Day
	set bool
}

var _ pflag.Value = (*dayValue)(nil)

func (v *dayValue) String() string {
	if !v.set {
		return ""
	}
	return v.d.String()
}

func (v *dayValue) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	v.d, v.set = d, true
	return nil
}

func (v *dayValue) Type() string { return "date" }
