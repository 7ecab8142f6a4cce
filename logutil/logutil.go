// Package logutil builds the process-wide zap logger used by the mstbench CLI.
// Library packages never call it; they take a *zap.Logger by option.
package logutil

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat is returned for an encoding other than console or json.
var ErrUnknownFormat = errors.New("logutil: unknown log format")

// New returns a production logger at level ("debug", "info", "warn",
// "error", ...; empty means info) writing format-encoded entries with
// ISO8601 timestamps to stderr. Results go to files and stdout, so logs
// stay on stderr.
func New(level, format string) (*zap.Logger, error) {
	config, err := Config(level, format)
	if err != nil {
		return nil, err
	}
	return config.Build()
}

// Config is the zap configuration New builds from.
func Config(level, format string) (zap.Config, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("logutil: %w", err)
		}
		config.Level = lvl
	}

	switch format {
	case "", FormatConsole:
		config.Encoding = FormatConsole
	case FormatJSON:
		config.Encoding = FormatJSON
	default:
		return zap.Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config, nil
}
