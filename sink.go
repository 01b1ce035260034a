package dbug

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// WriteStats captures the write-failure counters of a Logger's output.
type WriteStats struct {
	Failures    uint64
	ShortWrites uint64
}

// sink serializes whole-line writes to one destination and counts failures.
// Loggers derived with Extend share their parent's sink; writes to os.Stdout
// and os.Stderr are serialized process-wide.
type sink struct {
	mu         *sync.Mutex
	dst        io.Writer
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

var (
	stdoutMu sync.Mutex
	stderrMu sync.Mutex
)

func sinkFor(w io.Writer) *sink {
	if w == nil {
		w = os.Stdout
	}
	switch w {
	case os.Stdout:
		return &sink{mu: &stdoutMu, dst: w}
	case os.Stderr:
		return &sink{mu: &stderrMu, dst: w}
	}
	return &sink{mu: new(sync.Mutex), dst: w}
}

func (s *sink) writeLine(p []byte) error {
	s.mu.Lock()
	n, err := s.dst.Write(p)
	s.mu.Unlock()

	if n != len(p) {
		s.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err != nil {
		s.failures.Add(1)
	}
	return err
}

func (s *sink) stats() WriteStats {
	return WriteStats{
		Failures:    s.failures.Load(),
		ShortWrites: s.shortWrite.Load(),
	}
}

var linePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

const linePoolMaxCap = 16 << 10

func acquireLine() *[]byte {
	b := linePool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

func releaseLine(b *[]byte) {
	if cap(*b) > linePoolMaxCap {
		return
	}
	linePool.Put(b)
}
