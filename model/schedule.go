package model

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when arrivals and departures don't pair up.
var ErrLengthMismatch = errors.New("arrivals and departures must have the same length")

// Schedule holds arrivals and departures as two parallel sequences.
// Arrivals[i] and Departures[i] always describe the same train.
type Schedule struct {
	Arrivals   []Minute
	Departures []Minute
}

// NewSchedule copies both sequences so later changes by the caller don't leak in.
func NewSchedule(arrivals, departures []Minute) (*Schedule, error) {
	if err := CheckPaired(arrivals, departures); err != nil {
		return nil, err
	}
	return &Schedule{
		Arrivals:   append([]Minute(nil), arrivals...),
		Departures: append([]Minute(nil), departures...),
	}, nil
}

// CheckPaired returns ErrLengthMismatch if the sequences can't be paired by index.
func CheckPaired(arrivals, departures []Minute) error {
	if len(arrivals) != len(departures) {
		return fmt.Errorf("%w: got %d arrivals and %d departures", ErrLengthMismatch, len(arrivals), len(departures))
	}
	return nil
}

func (s *Schedule) Len() int {
	return len(s.Arrivals)
}

// Intervals pairs arrivals and departures by index.
func (s *Schedule) Intervals() []Interval {
	ret := make([]Interval, 0, s.Len())
	for i := range s.Arrivals {
		ret = append(ret, Interval{Arrival: s.Arrivals[i], Departure: s.Departures[i]})
	}
	return ret
}
