// Package sleep implements a sleep that reports the time left whenever a
// chosen signal is delivered.
package sleep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/oklog/run"
)

// MaxSegment is the longest single wait in seconds. Longer and infinite
// sleeps are issued as consecutive waits of at most this length.
const MaxSegment = 1e9

// Exit codes returned by Run.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// ErrInvalidDuration is returned for negative or NaN durations.
var ErrInvalidDuration = errors.New("invalid sleep duration")

// Validate rejects durations that cannot be slept.
func Validate(total float64) error {
	if math.IsNaN(total) || total < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, strconv.FormatFloat(total, 'g', -1, 64))
	}
	return nil
}

// Sleeper sleeps while printing status lines to Out on signal delivery.
type Sleeper struct {
	Clock  Clock
	Out    io.Writer
	Notify func(c chan<- os.Signal, sig ...os.Signal)
	Stop   func(c chan<- os.Signal)
}

// New returns a Sleeper using the system clock and the os/signal package.
func New(out io.Writer) *Sleeper {
	return &Sleeper{
		Clock:  SystemClock,
		Out:    out,
		Notify: signal.Notify,
		Stop:   signal.Stop,
	}
}

// Run sleeps for total seconds, writing a status line each time sig is
// delivered. It returns ExitOK once the whole duration has elapsed and
// ExitInterrupted when ctx is cancelled first. An error is returned only if
// total is invalid, in which case nothing is slept.
func (s *Sleeper) Run(ctx context.Context, total float64, sig os.Signal) (int, error) {
	if err := Validate(total); err != nil {
		return ExitFailure, err
	}

	reporter := Reporter{Total: total, Start: s.Clock.Now()}
	sigs := make(chan os.Signal, 1)
	s.Notify(sigs, sig)

	slog.Debug("Sleeping", "seconds", FormatSeconds(total), "signal", sig.String())

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	g.Add(func() error {
		return s.wait(waitCtx, total)
	}, func(error) {
		cancel()
	})
	g.Add(func() error {
		s.report(reporter, sigs)
		return nil
	}, func(error) {
		s.Stop(sigs)
		close(sigs)
	})

	if err := g.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("Sleep interrupted", "left", FormatSeconds(reporter.Remaining(s.Clock.Now())))
			return ExitInterrupted, nil
		}
		return ExitFailure, err
	}

	slog.Debug("Sleep finished")
	return ExitOK, nil
}

// wait issues consecutive waits of at most MaxSegment seconds until total
// seconds have been covered. It never returns nil for an infinite total.
func (s *Sleeper) wait(ctx context.Context, total float64) error {
	var segment float64
	for remaining := total; remaining > 0; remaining -= segment {
		segment = min(remaining, MaxSegment)
		d := time.Duration(segment * float64(time.Second))
		slog.Debug("Waiting", "segment", d, "remaining", FormatSeconds(remaining))
		if err := s.Clock.Sleep(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// report writes one status line per delivery until sigs is closed.
func (s *Sleeper) report(r Reporter, sigs <-chan os.Signal) {
	for range sigs {
		if err := r.Report(s.Out, s.Clock.Now()); err != nil {
			slog.Warn("Failed to write status", "error", err)
		}
	}
}
