// Package logger owns the process-wide structured logger. Records are JSON lines written to
// <root>/.launchband/logs/launchband.log; before Setup (or after cleanup) everything is discarded.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDir  = ".launchband/logs"
	logName = "launchband.log"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup opens the log file under cfg.Root and installs a JSON handler on it.
// The returned cleanup closes the file and restores the discarding logger.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, filepath.FromSlash(logDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, logName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Named returns the global logger tagged with a component attribute.
func Named(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}
