package model

import "fmt"

// Interval is the platform occupancy of one train.
type Interval struct {
	Arrival   Minute
	Departure Minute
}

// Inverted reports whether the train leaves before it arrives. Such intervals
// are not rejected by the counters, they only skew the running count.
func (i Interval) Inverted() bool {
	return i.Departure < i.Arrival
}

// Span returns the service window: from the earliest minute any of the trains
// touches to the latest one. Inverted trains are covered end to end as well.
// It returns nil when there are no trains.
func Span(intervals []Interval) *Interval {
	if len(intervals) == 0 {
		return nil
	}
	first, last := intervals[0].Arrival, intervals[0].Arrival
	for _, i := range intervals {
		first = min(first, i.Arrival, i.Departure)
		last = max(last, i.Arrival, i.Departure)
	}
	return &Interval{Arrival: first, Departure: last}
}

func (i Interval) String() string {
	return fmt.Sprintf("%s - %s", i.Arrival, i.Departure)
}
