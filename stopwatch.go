package dbug

import (
	"strconv"
	"time"
)

const zeroElapsed = "+0"

// stopwatch remembers when its Logger last emitted a line.
type stopwatch struct {
	last time.Time
}

// suffix formats the whole milliseconds between the last emission and now.
func (s *stopwatch) suffix(now time.Time) string {
	if s.last.IsZero() {
		return zeroElapsed
	}
	ms := now.Sub(s.last).Milliseconds()
	if ms <= 0 {
		return zeroElapsed
	}
	return "+" + strconv.FormatInt(ms, 10)
}

// mark records an emission. The stored time never moves backwards.
func (s *stopwatch) mark(now time.Time) {
	if !s.last.IsZero() && now.Before(s.last) {
		return
	}
	s.last = now
}
