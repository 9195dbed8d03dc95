package eventloop

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ldi/tasklist/internal/log"
	"github.com/ldi/tasklist/internal/schedule"
	"github.com/ldi/tasklist/pkg/models"
)

// ErrStopped is returned when work is submitted to a loop that is not running.
var ErrStopped = errors.New("event loop stopped")

// Config is the configuration of the event loop.
type Config struct {
	// QueueSize is the capacity of the pending work queue.
	QueueSize int
	Logger    log.Logger
}

func (c *Config) defaults() error {
	if c.QueueSize < 0 {
		return fmt.Errorf("queue size must not be negative: %w", models.ErrNotValid)
	}
	if c.QueueSize == 0 {
		c.QueueSize = 64
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Loop runs closures one at a time on a single goroutine. Everything that
// touches the page elements goes through it, timer callbacks included.
type Loop struct {
	queue  chan func()
	done   chan struct{}
	logger log.Logger
}

// New returns a new event loop. It does nothing until Run is called.
func New(cfg Config) (*Loop, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Loop{
		queue:  make(chan func(), cfg.QueueSize),
		done:   make(chan struct{}),
		logger: cfg.Logger,
	}, nil
}

// Run drains the queue until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debugf("Event loop started")
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.logger.Debugf("Event loop stopped")
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}

	select {
	case l.queue <- wrapped:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post enqueues fn without waiting. Work posted after the loop stopped is dropped.
func (l *Loop) post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.done:
	}
}

// Schedule runs fn on the loop after d. Cancelling prevents fn from running
// even if the timer already fired and the callback is waiting in the queue.
func (l *Loop) Schedule(d time.Duration, fn func()) schedule.CancelFunc {
	var cancelled atomic.Bool
	timer := time.AfterFunc(d, func() {
		l.post(func() {
			if cancelled.Load() {
				return
			}
			fn()
		})
	})

	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}

var _ schedule.Scheduler = (*Loop)(nil)
