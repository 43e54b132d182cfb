package platform

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/liznear/platforms-from-scratch/model"
)

// occupancy replays events like Greedy and records, per distinct minute, the
// highest number of occupied platforms reached while handling that minute.
func occupancy(arrivals, departures []model.Minute) *treemap.Map[model.Minute, int] {
	m := treemap.New[model.Minute, int]()
	current := 0
	for _, e := range sortedEvents(arrivals, departures) {
		if e.Kind == model.Arrival {
			current++
		} else {
			current--
		}
		if v, ok := m.Get(e.Time); !ok || current > v {
			m.Put(e.Time, current)
		}
	}
	return m
}

// Busiest returns the earliest minute at which the Greedy peak is reached,
// together with that peak. An empty schedule returns (0, 0).
func Busiest(arrivals, departures []model.Minute) (model.Minute, int, error) {
	if err := model.CheckPaired(arrivals, departures); err != nil {
		return 0, 0, fmt.Errorf("busiest: %w", err)
	}

	var (
		at   model.Minute
		peak int
	)
	iter := occupancy(arrivals, departures).Iterator()
	for iter.Next() {
		if iter.Value() > peak {
			at, peak = iter.Key(), iter.Value()
		}
	}
	return at, peak, nil
}
