// Package logging configures the structured logger shared by the commands.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

type Config struct {
	// debug, info, warn or error
	Level string
	// Format of the console output, text or json
	Format string
	// Optional file receiving a json copy of every record
	File string
}

// Parses a level name
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, utils.MakeError(ErrInvalidLevel, "'%v'", name)
	}

	return level, nil
}

func consoleHandler(w io.Writer, format string, options *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, options), nil
	case "json":
		return slog.NewJSONHandler(w, options), nil
	}

	return nil, utils.MakeError(ErrInvalidFormat, "'%v'", format)
}

// Builds a logger writing to console and, if configured, fanning out to a json log file.
// The returned closer releases the log file
func New(config Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	options := &slog.HandlerOptions{Level: level}

	handler, err := consoleHandler(console, config.Format, options)
	if err != nil {
		return nil, nil, err
	}

	if config.File == "" {
		return slog.New(handler), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	fanout := slogmulti.Fanout(
		handler,
		slog.NewJSONHandler(file, options),
	)

	return slog.New(fanout), file, nil
}
