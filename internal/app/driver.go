package app

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Driver runs one frame per tick and applies host events between frames,
// all on the goroutine that called Run. Ticks missed while a frame is busy
// are dropped, not caught up.
type Driver struct {
	ticks    <-chan time.Time
	stopTick func()
	events   <-chan tcell.Event

	onEvent func(tcell.Event) bool
	onFrame func()

	mu       sync.Mutex // Held while a callback runs
	stopped  bool
	stop     chan struct{}
	stopOnce sync.Once
}

// NewDriver creates a driver ticking every interval. onEvent returns true
// to end the loop.
func NewDriver(interval time.Duration, events <-chan tcell.Event, onEvent func(tcell.Event) bool, onFrame func()) *Driver {
	ticker := time.NewTicker(interval)
	return newDriver(ticker.C, ticker.Stop, events, onEvent, onFrame)
}

func newDriver(ticks <-chan time.Time, stopTick func(), events <-chan tcell.Event, onEvent func(tcell.Event) bool, onFrame func()) *Driver {
	return &Driver{
		ticks:    ticks,
		stopTick: stopTick,
		events:   events,
		onEvent:  onEvent,
		onFrame:  onFrame,
		stop:     make(chan struct{}),
	}
}

// Run blocks until ctx is done, Stop is called, the event source closes or
// onEvent asks to quit. The driver is stopped when Run returns.
func (d *Driver) Run(ctx context.Context) error {
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-d.stop:
			return nil

		case ev, ok := <-d.events:
			if !ok {
				return nil
			}
			if quit := d.guard(func() bool { return d.onEvent(ev) }); quit {
				return nil
			}

		case <-d.ticks:
			if quit := d.guard(func() bool { d.onFrame(); return false }); quit {
				return nil
			}
		}
	}
}

// guard runs fn unless the driver is stopped, in which case it reports quit
func (d *Driver) guard(fn func() bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return true
	}
	return fn()
}

// Stop ends the loop and stops the ticker. It may be called more than once
// and from any goroutine other than the callbacks'. It waits for a running
// callback, and no callback starts after it returns.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()

		d.stopTick()
		close(d.stop)
	})
}
