package model

import (
	"cmp"
	"fmt"
)

// Kind tells whether an event opens or closes an interval.
//
// Arrival is ordered before Departure, so at the same minute all arrivals are
// handled before any departure.
type Kind byte

const (
	Arrival Kind = iota
	Departure
)

func (k Kind) String() string {
	if k == Arrival {
		return "Arrival"
	}
	return "Departure"
}

type Event struct {
	Time Minute
	Kind Kind
}

// Events returns one arrival event and one departure event per train, unsorted.
func Events(arrivals, departures []Minute) []Event {
	ret := make([]Event, 0, len(arrivals)+len(departures))
	for _, t := range arrivals {
		ret = append(ret, Event{Time: t, Kind: Arrival})
	}
	for _, t := range departures {
		ret = append(ret, Event{Time: t, Kind: Departure})
	}
	return ret
}

// CompareEvents orders events by time, then arrivals before departures.
func CompareEvents(a, b Event) int {
	if c := cmp.Compare(a.Time, b.Time); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

func (e Event) String() string {
	return fmt.Sprintf("%s - %s", e.Time, e.Kind)
}
