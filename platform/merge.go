package platform

import (
	"slices"

	"github.com/liznear/platforms-from-scratch/model"
)

// run is a merged group of trains: their arrivals and departures, each sorted
// on its own, and the platform count computed for the group.
type run struct {
	count      int
	arrivals   []model.Minute
	departures []model.Minute
}

func singleRun(arrival, departure model.Minute) run {
	return run{
		count:      1,
		arrivals:   []model.Minute{arrival},
		departures: []model.Minute{departure},
	}
}

// mergeAndCount merges two runs and counts platforms over the merged sequences.
//
// When resort is set, the concatenations are sorted from scratch. Otherwise
// both runs must already be sorted and they are merged linearly. The merged
// sequences are the same either way.
func mergeAndCount(left, right run, resort bool) run {
	var arrivals, departures []model.Minute
	if resort {
		arrivals = concatSorted(left.arrivals, right.arrivals)
		departures = concatSorted(left.departures, right.departures)
	} else {
		arrivals = mergeSorted(left.arrivals, right.arrivals)
		departures = mergeSorted(left.departures, right.departures)
	}
	return run{
		count:      countPlatforms(arrivals, departures),
		arrivals:   arrivals,
		departures: departures,
	}
}

func concatSorted(a, b []model.Minute) []model.Minute {
	ret := make([]model.Minute, 0, len(a)+len(b))
	ret = append(ret, a...)
	ret = append(ret, b...)
	slices.Sort(ret)
	return ret
}

// mergeSorted merges two sorted sequences into a new one.
func mergeSorted(a, b []model.Minute) []model.Minute {
	ret := make([]model.Minute, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			ret = append(ret, b[j])
			j++
		} else {
			ret = append(ret, a[i])
			i++
		}
	}
	ret = append(ret, a[i:]...)
	return append(ret, b[j:]...)
}

// countPlatforms walks sorted arrivals and departures with two pointers.
//
// An arrival strictly before the next departure takes a platform, anything
// else frees one first. So at the same minute the departing train leaves
// before the arriving one is counted. The walk stops once either sequence is
// used up.
func countPlatforms(arrivals, departures []model.Minute) int {
	var needed, maxPlatforms int
	i, j := 0, 0
	for i < len(arrivals) && j < len(departures) {
		if arrivals[i] < departures[j] {
			needed++
			maxPlatforms = max(maxPlatforms, needed)
			i++
		} else {
			needed--
			j++
		}
	}
	return maxPlatforms
}
