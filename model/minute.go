package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// ErrBadClock is returned when a time is not in HH:MM format.
var ErrBadClock = errors.New("time must be in HH:MM format")

// Minute is a time value counted in minutes since midnight.
//
// A single day spans 0 to 1439. Larger values are allowed and mean the next
// day(s), so an overnight departure can be written as 25:10.
type Minute int

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (Minute, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || h == "" || len(m) != 2 {
		return 0, fmt.Errorf("clock %q: %w", s, ErrBadClock)
	}
	hours, err := strconv.ParseUint(h, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w", s, ErrBadClock)
	}
	minutes, err := strconv.ParseUint(m, 10, 8)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("clock %q: %w", s, ErrBadClock)
	}
	return Minute(60*hours + minutes), nil
}

// ParseClocks parses every token. All bad tokens are reported together.
func ParseClocks(tokens []string) ([]Minute, error) {
	var (
		ret  = make([]Minute, 0, len(tokens))
		errs error
	)
	for _, t := range tokens {
		m, err := ParseClock(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		ret = append(ret, m)
	}
	if errs != nil {
		return nil, errs
	}
	return ret, nil
}

// String renders the minute as zero-padded HH:MM.
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}
