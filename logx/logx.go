// Package logx configures the process-wide slog logger used by the
// tutorials.
//
// The default level depends on build tags: -tags debug logs everything,
// -tags release only warnings and errors.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// Level is the level of the logger installed by Setup.
var Level = new(slog.LevelVar)

// Setup installs a text handler on stderr as the default logger. A true
// debug forces the debug level regardless of build tags.
func Setup(debug bool) {
	SetupWriter(os.Stderr, debug)
}

func SetupWriter(w io.Writer, debug bool) {
	Level.Set(defaultLevel)
	if debug {
		Level.Set(slog.LevelDebug)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level})
	slog.SetDefault(slog.New(h))
}

var exit = os.Exit

// Fatal logs err at error level and exits with status 1.
func Fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	exit(1)
}
