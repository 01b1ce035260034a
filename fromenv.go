package dbug

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvConfig holds the environment variables dbug understands. Values are kept
// raw; EnvConfig.Options interprets them.
type EnvConfig struct {
	// Filter is the filter specification.
	Filter  string `env:"DEBUG"`
	// Colors is always, auto, never or a boolean.
	Colors  string `env:"DEBUG_COLORS"`
	// NoColor disables colour when non-empty (https://no-color.org).
	NoColor string `env:"NO_COLOR"`
	// Output is stdout, stderr or a file path.
	Output  string `env:"DEBUG_OUTPUT"`
}

// LoadEnv reads EnvConfig from the process environment. A read failure yields
// the zero EnvConfig, which disables every Logger.
func LoadEnv() EnvConfig {
	var cfg EnvConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return EnvConfig{}
	}
	return cfg
}

// EnvOptions is LoadEnv().Options().
func EnvOptions() Options {
	return LoadEnv().Options()
}

// Options converts the raw variables into Options. Unknown DEBUG_COLORS
// values leave the default (ColorAlways) in place.
func (c EnvConfig) Options() Options {
	opts := Options{Filter: c.Filter}
	if mode, ok := ParseColorMode(c.Colors); ok {
		opts.Color = mode
	}
	if strings.TrimSpace(c.NoColor) != "" {
		opts.Color = ColorNever
	}
	opts.Output = writerFromEnvOutput(c.Output)
	return opts
}

func envFilter() string {
	return LoadEnv().Filter
}

var (
	fileOutputsMu sync.Mutex
	fileOutputs   = map[string]*lumberjack.Logger{}
)

func writerFromEnvOutput(value string) io.Writer {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "", "stdout", "default":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return fileOutput(trimmed)
}

// fileOutput returns the rotating writer for path, creating it on first use so
// every Logger pointed at one file shares a single rotator.
func fileOutput(path string) *lumberjack.Logger {
	fileOutputsMu.Lock()
	defer fileOutputsMu.Unlock()
	if w, ok := fileOutputs[path]; ok {
		return w
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 3,
	}
	fileOutputs[path] = w
	return w
}

// CloseOutputs closes the files opened for DEBUG_OUTPUT. Loggers that still
// write to them reopen the file on their next line.
func CloseOutputs() error {
	fileOutputsMu.Lock()
	defer fileOutputsMu.Unlock()
	var errs []error
	for path, w := range fileOutputs {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(fileOutputs, path)
	}
	return errors.Join(errs...)
}
