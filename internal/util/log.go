package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewRunLogger builds the batch-run logger: the log file receives everything
// down to debug, the stderr console only the requested level (info when the
// level is empty or unparsable). The returned func closes the log file.
func NewRunLogger(consoleLevel, logPath string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(consoleLevel))
	if err != nil || consoleLevel == "" {
		lvl = zerolog.InfoLevel
	}

	file, err := os.Create(logPath)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	filtered := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: console},
		Level:  lvl,
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(file, filtered)).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
	return logger, file.Close, nil
}
