package platform

import (
	"math/rand"
	"testing"

	"github.com/liznear/platforms-from-scratch/model"
)

// counter is the shared signature of Greedy and DivideConquer.
type counter func(arrivals, departures []model.Minute, opts ...Option) (int, error)

func counters() map[string]counter {
	return map[string]counter{
		"Greedy": Greedy,
		"DivideConquerBottomUp": func(a, d []model.Minute, opts ...Option) (int, error) {
			return DivideConquer(a, d, append(opts, WithStrategy(BottomUp))...)
		},
		"DivideConquerRecursive": func(a, d []model.Minute, opts ...Option) (int, error) {
			return DivideConquer(a, d, append(opts, WithStrategy(Recursive))...)
		},
	}
}

func mustCount(t *testing.T, c counter, arrivals, departures []model.Minute) int {
	t.Helper()
	got, err := c(arrivals, departures, WithVerbose(false))
	if err != nil {
		t.Fatalf("Fail to count platforms: %v", err)
	}
	return got
}

// randomSchedule returns n trains whose arrival and departure minutes are all
// distinct, so no arrival shares its minute with a departure.
func randomSchedule(r *rand.Rand, n int) ([]model.Minute, []model.Minute) {
	perm := r.Perm(4 * n)
	arrivals := make([]model.Minute, n)
	departures := make([]model.Minute, n)
	for i := 0; i < n; i++ {
		a, d := model.Minute(perm[2*i]), model.Minute(perm[2*i+1])
		if d < a {
			a, d = d, a
		}
		arrivals[i], departures[i] = a, d
	}
	return arrivals, departures
}
