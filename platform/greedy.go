package platform

import (
	"fmt"

	"github.com/emirpasic/gods/v2/trees/binaryheap"
	"github.com/liznear/platforms-from-scratch/model"
	"go.uber.org/zap"
)

// Greedy returns the peak number of trains at the station at the same time.
//
// All 2N arrival and departure events are replayed in time order. At the same
// minute every arrival is handled before any departure, so a train leaving at
// 10:00 still holds its platform when another one arrives at 10:00.
//
// Only the counts of arrivals and departures matter here, not their pairing.
func Greedy(arrivals, departures []model.Minute, opts ...Option) (int, error) {
	if err := model.CheckPaired(arrivals, departures); err != nil {
		return 0, fmt.Errorf("greedy: %w", err)
	}
	cfg := newConfig(opts...)

	events := sortedEvents(arrivals, departures)
	if cfg.Verbose {
		cfg.Logger.Info("Processing events (sorted by time)", zap.Int("events", len(events)))
		for _, e := range events {
			cfg.Logger.Info(e.String())
		}
	}

	var maxPlatforms, current int
	for _, e := range events {
		if e.Kind == model.Arrival {
			current++
		} else {
			current--
		}
		maxPlatforms = max(maxPlatforms, current)
	}
	return maxPlatforms, nil
}

// sortedEvents orders the events with a binary heap. The input slices are
// only read.
func sortedEvents(arrivals, departures []model.Minute) []model.Event {
	h := binaryheap.NewWith[model.Event](model.CompareEvents)
	h.Push(model.Events(arrivals, departures)...)

	ret := make([]model.Event, 0, h.Size())
	for {
		e, ok := h.Pop()
		if !ok {
			return ret
		}
		ret = append(ret, e)
	}
}
