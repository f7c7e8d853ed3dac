// Package obs wires up the process-wide structured logger.
package obs

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-pretty logger when stderr is a terminal and a
// plain JSON logger otherwise, matching zerolog's usual CLI/service
// split. level is parsed with zerolog.ParseLevel; an unrecognized level
// falls back to info.
func New(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if isTerminal(os.Stderr) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
