package platform

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/liznear/platforms-from-scratch/model"
	"go.uber.org/zap"
)

var ErrNoSchedule = errors.New("no schedule")

// Comparison holds the results of both counters on the same schedule.
type Comparison struct {
	Greedy        int
	DivideConquer int
	// BusiestAt is the earliest minute at which the Greedy peak is reached.
	BusiestAt model.Minute
	Strategy  Strategy
	Agree     bool
	// Ties is set when a train arrives at the same minute another one departs.
	// Only then can the two counters disagree.
	Ties bool
	// Trains is the number of trains, Window covers all of them. Window is
	// the zero Interval when there are no trains.
	Trains int
	Window model.Interval
	// Inverted counts trains departing before they arrive. They are counted
	// as given, which makes both results misleading.
	Inverted int
}

// Compare runs Greedy and DivideConquer on s. A disagreement is reported as
// is, it is not an error.
func Compare(s *model.Schedule, opts ...Option) (*Comparison, error) {
	if s == nil {
		return nil, fmt.Errorf("compare: %w", ErrNoSchedule)
	}

	g, err := Greedy(s.Arrivals, s.Departures, opts...)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	dc, err := DivideConquer(s.Arrivals, s.Departures, opts...)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return Summarize(s, g, dc, opts...)
}

// Summarize builds the Comparison of counts the caller already computed on s.
// It lets a caller run the counters one by one.
func Summarize(s *model.Schedule, greedy, divideConquer int, opts ...Option) (*Comparison, error) {
	if s == nil {
		return nil, fmt.Errorf("summarize: %w", ErrNoSchedule)
	}
	cfg := newConfig(opts...)

	at, _, err := Busiest(s.Arrivals, s.Departures)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	intervals := s.Intervals()
	c := &Comparison{
		Greedy:        greedy,
		DivideConquer: divideConquer,
		BusiestAt:     at,
		Strategy:      cfg.Strategy,
		Agree:         greedy == divideConquer,
		Ties:          hasTies(s),
		Trains:        len(intervals),
	}
	if w := model.Span(intervals); w != nil {
		c.Window = *w
	}
	for _, i := range intervals {
		if i.Inverted() {
			c.Inverted++
		}
	}

	if !c.Agree {
		cfg.Logger.Warn("Counters disagree",
			zap.Int("greedy", greedy),
			zap.Int("divideConquer", divideConquer),
			zap.Bool("ties", c.Ties))
	}
	if c.Inverted > 0 {
		cfg.Logger.Warn("Trains depart before they arrive", zap.Int("inverted", c.Inverted))
	}
	return c, nil
}

// hasTies reports whether some arrival shares its minute with some departure.
func hasTies(s *model.Schedule) bool {
	departures := hashset.New(s.Departures...)
	for _, a := range s.Arrivals {
		if departures.Contains(a) {
			return true
		}
	}
	return false
}
