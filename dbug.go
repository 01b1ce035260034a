package dbug

import (
	"fmt"
	"time"

	"pkt.systems/dbug/ansi"
	"pkt.systems/dbug/filter"
)

// LabelSeparator joins a parent label and the suffix passed to Extend.
const LabelSeparator = ":"

// Logger writes labelled debug lines when its label passes the filter.
type Logger struct {
	label   string
	color   uint8
	rules   filter.Rules
	enabled bool
	colored bool
	prefix  string
	fg      string

	opts   Options
	source func() string
	out    *sink
	now    func() time.Time
	watch  stopwatch
}

// New returns a Logger for label configured from the environment (see
// LoadEnv). The filter is read once, here; later changes to DEBUG only affect
// Loggers built afterwards, including those returned by Extend.
func New(label string) *Logger {
	opts := EnvOptions()
	return newLogger(label, opts, envFilter, sinkFor(opts.Output), time.Now)
}

// NewWithOptions returns a Logger for label configured by opts.
func NewWithOptions(label string, opts Options) *Logger {
	return newLogger(label, opts, nil, sinkFor(opts.Output), time.Now)
}

func newLogger(label string, opts Options, source func() string, out *sink, now func() time.Time) *Logger {
	rules := filter.Parse(opts.Filter)
	l := &Logger{
		label:   label,
		color:   ColorFor(label),
		rules:   rules,
		enabled: rules.Match(label),
		opts:    opts,
		source:  source,
		out:     out,
		now:     now,
	}
	switch opts.Color {
	case ColorNever:
	case ColorAuto:
		l.colored = isTerminal(out.dst)
	default:
		l.colored = true
	}
	l.fg = ansi.Foreground256(l.color)
	l.prefix = l.paint(label)
	return l
}

// Label returns the Logger's label.
func (l *Logger) Label() string { return l.label }

// Color returns the xterm-256 colour code of the label.
func (l *Logger) Color() uint8 { return l.color }

// Enabled reports whether the filter lets this Logger write.
func (l *Logger) Enabled() bool { return l.enabled }

// Rules returns the filter rules captured when the Logger was built.
func (l *Logger) Rules() filter.Rules { return l.rules }

// WriteStats returns the write-failure counters of the Logger's output.
func (l *Logger) WriteStats() WriteStats { return l.out.stats() }

// Log writes "<label> <msg> +<ms>" followed by a newline, where ms is the time
// since this Logger's previous line. Nothing happens, and the stopwatch is
// left alone, when the Logger is filtered out.
func (l *Logger) Log(msg string) {
	if !l.enabled {
		return
	}
	suffix := l.watch.suffix(l.now())

	buf := acquireLine()
	line := append(*buf, l.prefix...)
	line = append(line, ' ')
	line = append(line, msg...)
	line = append(line, ' ')
	line = l.appendPainted(line, suffix)
	line = append(line, '\n')
	err := l.out.writeLine(line)
	*buf = line
	releaseLine(buf)

	l.watch.mark(l.now())

	if err != nil && l.opts.OnWriteError != nil {
		l.opts.OnWriteError(err)
	}
}

// Logf formats according to a fmt format specifier and calls Log. Arguments
// are not formatted when the Logger is filtered out.
func (l *Logger) Logf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Extend returns a new Logger labelled "<label>:<suffix>". The child gets its
// own colour and a fresh stopwatch, and evaluates the filter again: Loggers
// from New re-read DEBUG, Loggers from NewWithOptions reuse Options.Filter.
// Output is shared with the receiver, which is left untouched.
func (l *Logger) Extend(suffix string) *Logger {
	opts := l.opts
	if l.source != nil {
		opts.Filter = l.source()
	}
	return newLogger(l.label+LabelSeparator+suffix, opts, l.source, l.out, l.now)
}

// Func returns Log bound to l. Repeated calls share l's stopwatch.
func (l *Logger) Func() func(msg string) {
	return l.Log
}

func (l *Logger) paint(s string) string {
	if !l.colored {
		return s
	}
	return ansi.Colorize(l.color, s)
}

func (l *Logger) appendPainted(dst []byte, s string) []byte {
	if !l.colored {
		return append(dst, s...)
	}
	dst = append(dst, l.fg...)
	dst = append(dst, s...)
	return append(dst, ansi.Reset...)
}
