package platform

import (
	"fmt"

	"github.com/liznear/platforms-from-scratch/model"
	"go.uber.org/zap"
)

// DivideConquer returns the peak number of trains at the station at the same
// time by splitting the trains into halves and merging the sorted halves back.
//
// arrivals[i] and departures[i] must describe the same train. The halves are
// cut by index so each train stays whole. Sorting arrivals and departures
// independently before calling this breaks the pairing; the merged sequences
// are sorted here, after the split.
//
// At the same minute a departure frees its platform before an arrival takes
// one, the opposite of Greedy. The two may therefore differ on
// schedules where a train arrives at the minute another one leaves.
func DivideConquer(arrivals, departures []model.Minute, opts ...Option) (int, error) {
	if err := model.CheckPaired(arrivals, departures); err != nil {
		return 0, fmt.Errorf("divide and conquer: %w", err)
	}
	if len(arrivals) == 0 {
		return 0, nil
	}
	cfg := newConfig(opts...)

	var r run
	switch cfg.Strategy {
	case Recursive:
		r = divide(arrivals, departures)
	case BottomUp:
		r = mergeBottomUp(arrivals, departures, cfg)
	default:
		return 0, fmt.Errorf("divide and conquer: unknown strategy %v", cfg.Strategy)
	}
	return r.count, nil
}

// divide is the top-down form. Every merge re-sorts the two halves.
func divide(arrivals, departures []model.Minute) run {
	if len(arrivals) == 1 {
		return singleRun(arrivals[0], departures[0])
	}
	mid := len(arrivals) / 2
	left := divide(arrivals[:mid], departures[:mid])
	right := divide(arrivals[mid:], departures[mid:])
	return mergeAndCount(left, right, true)
}

// mergeBottomUp starts from one run per train and merges neighbouring runs
// level by level until a single run is left. An odd run out is carried to the
// next level unchanged.
func mergeBottomUp(arrivals, departures []model.Minute, cfg *Config) run {
	runs := make([]run, 0, len(arrivals))
	for i := range arrivals {
		runs = append(runs, singleRun(arrivals[i], departures[i]))
	}

	for level := 1; len(runs) > 1; level++ {
		next := make([]run, 0, (len(runs)+1)/2)
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				next = append(next, runs[i])
				continue
			}
			next = append(next, mergeAndCount(runs[i], runs[i+1], false))
		}
		runs = next

		if cfg.Verbose {
			peak := 0
			for _, r := range runs {
				peak = max(peak, r.count)
			}
			cfg.Logger.Info("Merged level", zap.Int("level", level), zap.Int("runs", len(runs)), zap.Int("peak", peak))
		}
	}
	return runs[0]
}
