package stopwatch

// Package stopwatch implements the timing core: elapsed-time state advanced
// by a 50 ms tick, start/pause/toggle/reset transitions, and observer
// callbacks for time and run-state changes. It knows nothing about the UI;
// the view subscribes to the callbacks and renders the formatted strings.
