// Package report renders the calculator's output for a terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/liznear/platforms-from-scratch/platform"
	"github.com/olekukonko/tablewriter"
)

var ErrBadColorMode = errors.New("color must be auto, always or never")

// ColorMode controls ANSI styling. Auto styles only when stdout is a terminal.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("report: %w, got %q", ErrBadColorMode, s)
	}
}

// Printer writes styled messages and tables to one writer.
type Printer struct {
	w      io.Writer
	styled bool

	welcome *color.Color
	greedy  *color.Color
	divide  *color.Color
	title   *color.Color
	failure *color.Color
	warning *color.Color
}

func New(w io.Writer, mode ColorMode) *Printer {
	p := &Printer{
		w:       w,
		welcome: color.New(color.FgGreen, color.Bold),
		greedy:  color.New(color.FgBlue, color.Bold),
		divide:  color.New(color.FgYellow, color.Bold),
		title:   color.New(color.FgMagenta, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
	}
	switch mode {
	case ColorAlways:
		p.styled = true
	case ColorNever:
		p.styled = false
	default:
		p.styled = !color.NoColor
	}
	for _, c := range []*color.Color{p.welcome, p.greedy, p.divide, p.title, p.failure, p.warning} {
		if p.styled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) Welcome() {
	p.welcome.Fprintln(p.w, "🚄 Welcome to the Train Platform Calculator! 🚄")
	fmt.Fprintln(p.w)
}

func (p *Printer) RunningGreedy() {
	fmt.Fprintln(p.w)
	p.greedy.Fprintln(p.w, "🔍 Running Greedy Approach...")
}

func (p *Printer) RunningDivideConquer() {
	fmt.Fprintln(p.w)
	p.divide.Fprintln(p.w, "🔍 Running Divide & Conquer Approach...")
}

func (p *Printer) Error(err error) {
	p.failure.Fprintf(p.w, "❌ Error: %v\n", err)
}

// Comparison writes a bordered table putting both counters side by side,
// followed by warnings about inputs that make the counts misleading.
func (p *Printer) Comparison(c *platform.Comparison) {
	fmt.Fprintln(p.w)
	p.title.Fprintln(p.w, "🔍 Algorithm Comparison")

	window := "-"
	if c.Trains > 0 {
		window = c.Window.String()
	}

	t := tablewriter.NewWriter(p.w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetRowLine(true)
	t.SetHeader([]string{"Factor", "Greedy Approach", "Divide & Conquer"})
	t.AppendBulk([][]string{
		{"Time Complexity", "O(N log N)", divideComplexity(c.Strategy)},
		{"Space Complexity", "O(N) (Events)", divideSpace(c.Strategy)},
		{"Ease of Implementation", "✅ Simple & Intuitive", "⚠ More Complex"},
		{"Performance", platforms(c.Greedy), platforms(c.DivideConquer)},
		{"Busiest At", c.BusiestAt.String(), "-"},
		{"Service Window", window, window},
	})
	if p.styled {
		t.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold},
			tablewriter.Colors{tablewriter.Bold})
		t.SetColumnColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiMagentaColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiYellowColor})
	}
	t.Render()

	if !c.Agree {
		if c.Ties {
			p.warning.Fprintln(p.w, "\nNote: some trains arrive at the minute another one departs. Greedy keeps the departing train on its platform, divide and conquer frees it first.")
		} else {
			p.warning.Fprintln(p.w, "\nWarning: the counts differ on a schedule without shared minutes.")
		}
	}
	if c.Inverted > 0 {
		p.warning.Fprintf(p.w, "\nWarning: %d train(s) depart before they arrive, the counts above are misleading.\n", c.Inverted)
	}
}

func platforms(n int) string {
	if n == 1 {
		return "🏆 1 Platform"
	}
	return fmt.Sprintf("🏆 %d Platforms", n)
}

func divideComplexity(s platform.Strategy) string {
	if s == platform.Recursive {
		return "O(N log² N)"
	}
	return "O(N log N)"
}

func divideSpace(s platform.Strategy) string {
	if s == platform.Recursive {
		return "O(N) (Recursion)"
	}
	return "O(N) (Runs)"
}
