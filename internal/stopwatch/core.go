package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// TickInterval is the period of the timing update: 50 ms (20 Hz), each tick
// advancing the elapsed time by 5 centiseconds.
const TickInterval = 50 * time.Millisecond

const centisPerTick = 5

// Snapshot is an immutable copy of the elapsed time. Observers receive
// formatted strings derived from snapshots, never the live state.
type Snapshot struct {
	Hours        int
	Minutes      int
	Seconds      int
	Centiseconds int
}

// Clock returns the elapsed time as "HH:MM:SS". Hours are unbounded and
// simply grow past two digits.
func (s Snapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.Hours, s.Minutes, s.Seconds)
}

// Centis returns the centisecond suffix as ".CC".
func (s Snapshot) Centis() string {
	return fmt.Sprintf(".%02d", s.Centiseconds)
}

// Core owns the stopwatch state: elapsed time plus a Stopped/Running flag.
// While running, an internal ticker goroutine advances the time every
// TickInterval. UI callbacks fire outside the core's lock, so they may call
// back into the core (e.g. the reset button while running).
//
// Ticks are never compensated: if the scheduler delays a tick the stopwatch
// drifts rather than catching up, which is fine for a display-oriented
// widget.
type Core struct {
	mu      sync.Mutex
	snap    Snapshot
	running bool
	stop    chan struct{}

	onTime    func(clock, centis string)
	onRunning func(running bool)
}

// NewCore creates a stopped stopwatch at zero.
func NewCore() *Core {
	return &Core{}
}

// SetOnTime sets the callback fired after every time change with the
// formatted clock and centisecond strings. Called from the ticker goroutine
// while running; wrap UI work in fyne.Do.
func (c *Core) SetOnTime(callback func(clock, centis string)) {
	c.mu.Lock()
	c.onTime = callback
	c.mu.Unlock()
}

// SetOnRunning sets the callback fired when the run state flips.
func (c *Core) SetOnRunning(callback func(running bool)) {
	c.mu.Lock()
	c.onRunning = callback
	c.mu.Unlock()
}

// IsRunning reports whether the stopwatch is currently running.
func (c *Core) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Snapshot returns a copy of the current elapsed time.
func (c *Core) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Start begins ticking. No-op when already running.
func (c *Core) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.run(stop)
	c.emitRunning(true)
}

// Pause halts ticking. No-op when already stopped.
func (c *Core) Pause() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stop)
	c.stop = nil
	c.mu.Unlock()

	c.emitRunning(false)
}

// Toggle pauses a running stopwatch and starts a stopped one.
func (c *Core) Toggle() {
	if c.IsRunning() {
		c.Pause()
	} else {
		c.Start()
	}
}

// Reset stops the stopwatch and zeroes the elapsed time. It always emits a
// time update with the zero value, but emits the run-state change only when
// the stopwatch was actually running, so an already-stopped UI is not
// restyled redundantly.
func (c *Core) Reset() {
	c.mu.Lock()
	wasRunning := c.running
	c.running = false
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.snap = Snapshot{}
	c.mu.Unlock()

	c.emitTime()
	if wasRunning {
		c.emitRunning(false)
	}
}

// Tick advances the elapsed time by one interval (5 centiseconds), carrying
// into seconds, minutes and hours, then emits the time update. The ticker
// goroutine calls it every TickInterval; tests call it directly.
func (c *Core) Tick() {
	c.mu.Lock()
	c.snap.Centiseconds += centisPerTick
	if c.snap.Centiseconds >= 100 {
		c.snap.Seconds += c.snap.Centiseconds / 100
		c.snap.Centiseconds %= 100
		if c.snap.Seconds >= 60 {
			c.snap.Seconds -= 60
			c.snap.Minutes++
			if c.snap.Minutes >= 60 {
				c.snap.Minutes -= 60
				c.snap.Hours++ // unbounded, never wraps
			}
		}
	}
	c.mu.Unlock()

	c.emitTime()
}

func (c *Core) run(stop chan struct{}) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// A tick and a pause can become ready together; prefer
			// stopping so paused state is never advanced.
			select {
			case <-stop:
				return
			default:
			}
			c.Tick()
		}
	}
}

func (c *Core) emitTime() {
	c.mu.Lock()
	callback := c.onTime
	clock, centis := c.snap.Clock(), c.snap.Centis()
	c.mu.Unlock()

	if callback != nil {
		callback(clock, centis)
	}
}

func (c *Core) emitRunning(running bool) {
	c.mu.Lock()
	callback := c.onRunning
	c.mu.Unlock()

	if callback != nil {
		callback(running)
	}
}
