// Package dbug is a label-scoped console tracer for ad-hoc debugging. Every
// Logger carries a label such as "app:db", a colour derived from that label
// and a stopwatch that prints the milliseconds since the previous line the
// same Logger wrote.
//
// # Filtering
//
// Output is off unless the filter specification names the label. New reads the
// specification from the DEBUG environment variable when the Logger is built;
// NewWithOptions takes it from Options.Filter. See package filter for the
// grammar:
//
//	DEBUG='app:* -app:noisy' ./server
//
// # Usage
//
//	log := dbug.New("app")
//	log.Log("starting")                 // app starting +0
//	log.Logf("listening on %s", addr)   // app listening on :8080 +3
//
//	db := log.Extend("db")              // label "app:db", own colour and stopwatch
//	db.Log("connected")
//
//	trace := db.Func()                  // func(string) bound to db
//	trace("query done")
//
// # Environment
//
// LoadEnv recognises DEBUG (filter), DEBUG_COLORS (always, auto, never or a
// boolean), NO_COLOR (any non-empty value disables colour) and DEBUG_OUTPUT
// (stdout, stderr or a file path rotated by lumberjack).
//
// # Concurrency
//
// A Logger is not safe for concurrent use: Log updates the Logger's stopwatch
// without locking. Callers sharing one Logger between goroutines must guard it
// with their own mutex. Each line is written with a single Write; writes to
// os.Stdout and os.Stderr, and writes from Loggers related through Extend, are
// serialized so their lines never interleave.
package dbug
