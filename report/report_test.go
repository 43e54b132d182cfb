package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/liznear/platforms-from-scratch/model"
	"github.com/liznear/platforms-from-scratch/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const esc = "\x1b["

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).Comparison(&platform.Comparison{
		Greedy:        3,
		DivideConquer: 3,
		BusiestAt:     1100,
		Strategy:      platform.BottomUp,
		Agree:         true,
		Trains:        6,
		Window:        model.Interval{Arrival: 900, Departure: 2000},
	})

	out := buf.String()
	assert.Contains(t, out, "Algorithm Comparison")
	assert.Contains(t, out, "Greedy Approach")
	assert.Contains(t, out, "🏆 3 Platforms")
	assert.Contains(t, out, "18:20")
	assert.Contains(t, out, "15:00 - 33:20")
	assert.Contains(t, out, "O(N log N)")
	assert.Contains(t, out, "+---")
	assert.NotContains(t, out, "log² N")
	assert.NotContains(t, out, "Note:")
	assert.NotContains(t, out, "Warning:")
	assert.NotContains(t, out, esc)
}

func TestComparison_Recursive(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).Comparison(&platform.Comparison{
		Greedy:        1,
		DivideConquer: 1,
		Strategy:      platform.Recursive,
		Agree:         true,
		Trains:        1,
	})
	assert.Contains(t, buf.String(), "O(N log² N)")
	assert.Contains(t, buf.String(), "O(N) (Recursion)")
	assert.Contains(t, buf.String(), "🏆 1 Platform")
	assert.NotContains(t, buf.String(), "1 Platforms")
}

func TestComparison_NoTrains(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).Comparison(&platform.Comparison{Agree: true})
	assert.Contains(t, buf.String(), "🏆 0 Platforms")
	assert.NotContains(t, buf.String(), "00:00 - 00:00")
}

func TestComparison_Warnings(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorNever)

	p.Comparison(&platform.Comparison{Greedy: 2, DivideConquer: 1, Ties: true})
	assert.Contains(t, buf.String(), "🏆 2 Platforms")
	assert.Contains(t, buf.String(), "Note:")

	buf.Reset()
	p.Comparison(&platform.Comparison{Greedy: 2, DivideConquer: 1})
	assert.Contains(t, buf.String(), "Warning: the counts differ")

	buf.Reset()
	p.Comparison(&platform.Comparison{Greedy: 1, DivideConquer: 1, Agree: true, Inverted: 2})
	assert.Contains(t, buf.String(), "Warning: 2 train(s) depart before they arrive")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorNever)
	p.Welcome()
	p.RunningGreedy()
	p.RunningDivideConquer()
	p.Error(errors.New("boom"))

	assert.Equal(t,
		"🚄 Welcome to the Train Platform Calculator! 🚄\n\n"+
			"\n🔍 Running Greedy Approach...\n"+
			"\n🔍 Running Divide & Conquer Approach...\n"+
			"❌ Error: boom\n",
		buf.String())
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorAlways)
	p.Error(errors.New("boom"))
	assert.Contains(t, buf.String(), esc)
	assert.Contains(t, buf.String(), "❌ Error: boom")

	buf.Reset()
	p.Comparison(&platform.Comparison{Greedy: 1, DivideConquer: 1, Agree: true, Trains: 1})
	assert.Contains(t, buf.String(), esc)
}

func TestParseColorMode(t *testing.T) {
	tcs := []struct {
		s    string
		want ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"ALWAYS", ColorAlways},
		{"never", ColorNever},
	}
	for _, tc := range tcs {
		got, err := ParseColorMode(tc.s)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.s)
	}

	_, err := ParseColorMode("rainbow")
	assert.ErrorIs(t, err, ErrBadColorMode)
}
