// Package warmup periodically recomputes cached dashboard payloads.
package warmup

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/tastyhub/dashboard-manager/internal/period"
)

// Config holds configuration for the warm-up worker.
type Config struct {
	// WorkerInterval is the refresh period. Zero disables the worker.
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Periods        []string      `mapstructure:"periods"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 5 * time.Minute,
		Periods:        []string{"day", "week", "month"},
	}
}

// Refresher recomputes and stores the cached payloads for one period.
type Refresher interface {
	Refresh(ctx context.Context, tok period.Token) error
}

type Worker struct {
	r       Refresher
	c       *Config
	periods []period.Token
	stop    context.CancelFunc
	done    chan struct{}
}

// New creates a warm-up worker. Period names are normalized with period.ParseToken.
func New(c *Config, r Refresher) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	names := c.Periods
	if len(names) == 0 {
		names = DefaultConfig().Periods
	}
	seen := map[period.Token]bool{}
	periods := make([]period.Token, 0, len(names))
	for _, n := range names {
		tok := period.ParseToken(n)
		if seen[tok] {
			continue
		}
		seen[tok] = true
		periods = append(periods, tok)
	}
	return &Worker{r: r, c: c, periods: periods}
}

// Enabled reports whether the worker has an interval to run on.
func (w *Worker) Enabled() bool {
	return w.c.WorkerInterval > 0
}

// Start warms every period once and then keeps refreshing on each tick.
func (w *Worker) Start(ctx context.Context) error {
	if w.stop != nil {
		return fmt.Errorf("warm-up worker already started")
	}
	if !w.Enabled() {
		slog.Default().InfoContext(ctx, "warm-up worker disabled")
		return nil
	}
	ctx, w.stop = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.worker(ctx)
	return nil
}

// Stop stops the worker and waits for the current refresh to finish.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("warm-up worker already stopped or not started")
	}
	w.stop()
	<-w.done
	w.stop = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.refreshAll(ctx)
	for {
		select {
		case <-ticker.C:
			w.refreshAll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) refreshAll(ctx context.Context) {
	for _, tok := range w.periods {
		if ctx.Err() != nil {
			return
		}
		if err := w.r.Refresh(ctx, tok); err != nil {
			slog.Default().ErrorContext(ctx, "can't refresh dashboard cache",
				slog.String("period", string(tok)),
				slog.String("err", err.Error()),
			)
		}
	}
}
