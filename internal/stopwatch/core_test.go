package stopwatch

import "testing"

func tickN(c *Core, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func TestSnapshotFormatting(t *testing.T) {
	tests := []struct {
		snap       Snapshot
		wantClock  string
		wantCentis string
	}{
		{Snapshot{}, "00:00:00", ".00"},
		{Snapshot{Hours: 1, Minutes: 2, Seconds: 3, Centiseconds: 4}, "01:02:03", ".04"},
		{Snapshot{Hours: 123, Minutes: 59, Seconds: 59, Centiseconds: 95}, "123:59:59", ".95"},
	}

	for _, tt := range tests {
		if got := tt.snap.Clock(); got != tt.wantClock {
			t.Errorf("Clock() = %q, want %q", got, tt.wantClock)
		}
		if got := tt.snap.Centis(); got != tt.wantCentis {
			t.Errorf("Centis() = %q, want %q", got, tt.wantCentis)
		}
	}
}

func TestTickCarryPropagation(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		want  Snapshot
	}{
		{"single tick", 1, Snapshot{Centiseconds: 5}},
		{"just below a second", 19, Snapshot{Centiseconds: 95}},
		{"one second", 20, Snapshot{Seconds: 1}},
		{"one minute", 20 * 60, Snapshot{Minutes: 1}},
		{"one hour", 20 * 60 * 60, Snapshot{Hours: 1}},
		{"mixed", 20*3600 + 20*60 + 20 + 7, Snapshot{Hours: 1, Minutes: 1, Seconds: 1, Centiseconds: 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCore()
			tickN(c, tt.ticks)
			if got := c.Snapshot(); got != tt.want {
				t.Errorf("after %d ticks: %+v, want %+v", tt.ticks, got, tt.want)
			}
		})
	}
}

func TestTickEmitsFormattedTime(t *testing.T) {
	c := NewCore()
	var gotClock, gotCentis string
	c.SetOnTime(func(clock, centis string) {
		gotClock, gotCentis = clock, centis
	})

	tickN(c, 20)
	if gotClock != "00:00:01" || gotCentis != ".00" {
		t.Errorf("after 20 ticks emitted %q%q, want \"00:00:01\".00", gotClock, gotCentis)
	}
}

func TestStartPauseTransitions(t *testing.T) {
	c := NewCore()
	var states []bool
	c.SetOnRunning(func(running bool) {
		states = append(states, running)
	})

	c.Start()
	if !c.IsRunning() {
		t.Fatal("core should be running after Start")
	}
	c.Start() // no-op, must not re-emit
	c.Pause()
	if c.IsRunning() {
		t.Fatal("core should be stopped after Pause")
	}
	c.Pause() // no-op

	want := []bool{true, false}
	if len(states) != len(want) {
		t.Fatalf("run-state notifications = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("run-state notifications = %v, want %v", states, want)
		}
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	c := NewCore()

	c.Toggle()
	if !c.IsRunning() {
		t.Fatal("toggle from stopped should start")
	}
	c.Toggle()
	if c.IsRunning() {
		t.Fatal("toggle from running should pause")
	}
	c.Toggle()
	c.Toggle()
	if c.IsRunning() {
		t.Fatal("double toggle should return to the original state")
	}
}

func TestResetZeroesFromAnyState(t *testing.T) {
	c := NewCore()
	tickN(c, 1234)

	c.Reset()
	if got := c.Snapshot(); got != (Snapshot{}) {
		t.Errorf("snapshot after reset = %+v, want zero", got)
	}
	if c.IsRunning() {
		t.Error("core running after reset")
	}
}

func TestResetEmitsRunStateOnlyWhenRunning(t *testing.T) {
	c := NewCore()
	runStateEmits := 0
	timeEmits := 0
	c.SetOnRunning(func(bool) { runStateEmits++ })
	c.SetOnTime(func(string, string) { timeEmits++ })

	// Reset while stopped: time update only.
	c.Reset()
	if runStateEmits != 0 {
		t.Errorf("reset while stopped emitted %d run-state changes, want 0", runStateEmits)
	}
	if timeEmits != 1 {
		t.Errorf("reset emitted %d time updates, want 1", timeEmits)
	}

	// Reset while running: the stop must be notified. The time callback is
	// detached first so the ticker goroutine cannot touch the counter.
	c.SetOnTime(nil)
	c.Start() // emits true
	c.Reset() // emits zero time + false
	if runStateEmits != 2 {
		t.Errorf("run-state changes = %d, want 2 (start + reset)", runStateEmits)
	}
}

func TestResetEmitsZeroTime(t *testing.T) {
	c := NewCore()
	tickN(c, 42)

	var gotClock, gotCentis string
	c.SetOnTime(func(clock, centis string) {
		gotClock, gotCentis = clock, centis
	})
	c.Reset()
	if gotClock != "00:00:00" || gotCentis != ".00" {
		t.Errorf("reset emitted %q%q, want \"00:00:00\".00", gotClock, gotCentis)
	}
}

func TestCallbackMayReenterCore(t *testing.T) {
	c := NewCore()
	c.SetOnTime(func(string, string) {
		// Re-entrant call; must not deadlock.
		_ = c.IsRunning()
	})
	c.Tick()
}
