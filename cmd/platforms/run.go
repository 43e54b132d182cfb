package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/liznear/platforms-from-scratch/config"
	"github.com/liznear/platforms-from-scratch/logger"
	"github.com/liznear/platforms-from-scratch/model"
	"github.com/liznear/platforms-from-scratch/platform"
	"github.com/liznear/platforms-from-scratch/report"
	"github.com/liznear/platforms-from-scratch/utils"
	"go.uber.org/multierr"
)

const (
	exitOK    = 0
	exitInput = 1
	exitSetup = 2
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		report.New(stderr, report.ColorAuto).Error(err)
		return exitSetup
	}
	errOut := report.New(stderr, cfg.ColorMode)

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: stderr})
	if err != nil {
		errOut.Error(err)
		return exitSetup
	}
	defer func() { _ = log.Sync() }()

	// The trace logger carries the counters' narration. It always logs at
	// info so that --verbose alone decides whether the narration shows.
	trace, err := logger.New(logger.Options{Level: "info", Format: cfg.LogFormat, Writer: stdout})
	if err != nil {
		errOut.Error(err)
		return exitSetup
	}
	defer func() { _ = trace.Sync() }()

	out := report.New(stdout, cfg.ColorMode)
	out.Welcome()

	opts := []platform.Option{
		platform.WithVerbose(cfg.Verbose),
		platform.WithLogger(trace),
		platform.WithStrategy(cfg.Merge),
	}
	var (
		in                   = bufio.NewReader(stdin)
		arrivals, departures []string
		schedule             *model.Schedule
		greedy, divide       int
	)
	err = utils.Run(log,
		utils.Step{Name: "read", Run: func() error {
			var err error
			if arrivals, err = readTimes(cfg.Arrivals, stdout, in, "Enter arrival times (space-separated, HH:MM format): "); err != nil {
				return err
			}
			departures, err = readTimes(cfg.Departures, stdout, in, "Enter departure times (space-separated, HH:MM format): ")
			return err
		}},
		utils.Step{Name: "parse", Run: func() error {
			if len(arrivals) != len(departures) {
				return fmt.Errorf("%w: got %d arrivals and %d departures", model.ErrLengthMismatch, len(arrivals), len(departures))
			}
			a, aErr := model.ParseClocks(arrivals)
			d, dErr := model.ParseClocks(departures)
			if err := multierr.Combine(aErr, dErr); err != nil {
				return err
			}
			var err error
			schedule, err = model.NewSchedule(a, d)
			return err
		}},
		utils.Step{Name: "greedy", Run: func() error {
			out.RunningGreedy()
			var err error
			greedy, err = platform.Greedy(schedule.Arrivals, schedule.Departures, opts...)
			return err
		}},
		utils.Step{Name: "divide and conquer", Run: func() error {
			out.RunningDivideConquer()
			var err error
			divide, err = platform.DivideConquer(schedule.Arrivals, schedule.Departures, opts...)
			return err
		}},
		utils.Step{Name: "render", Run: func() error {
			c, err := platform.Summarize(schedule, greedy, divide, opts...)
			if err != nil {
				return err
			}
			out.Comparison(c)
			return nil
		}},
	)
	if err != nil {
		errOut.Error(err)
		return exitInput
	}
	return exitOK
}

// readTimes uses the configured value when there is one and prompts otherwise.
func readTimes(configured string, w io.Writer, r *bufio.Reader, label string) ([]string, error) {
	if strings.TrimSpace(configured) != "" {
		return strings.Fields(configured), nil
	}
	return utils.Prompt(w, r, label)
}
