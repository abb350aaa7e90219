package helpers

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken"}

// InitLoggerFromConfig logs to stdout and exits the process when the logging
// config is unusable.
func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logger, err := NewLogger(conf, name, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}
	return logger
}

func NewLogger(conf *LoggingConfig, name string, w io.Writer) (lager.Logger, error) {
	logLevel, err := ParseLogLevel(conf.Level)
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger(name)
	if conf.PlainTextSink {
		logger.RegisterSink(createPlaintextSink(w, logLevel))
		return logger, nil
	}

	redactedSink, err := lager.NewRedactingSink(lager.NewWriterSink(w, logLevel), redactedKeyPatterns, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redacted sink: %w", err)
	}
	logger.RegisterSink(redactedSink)
	return logger, nil
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func createPlaintextSink(w io.Writer, logLevel lager.LogLevel) lager.Sink {
	slogLevel := slog.LevelInfo
	switch logLevel {
	case lager.DEBUG:
		slogLevel = slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		slogLevel = slog.LevelError
	}
	slogger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel}))
	return lager.NewSlogSink(slogger)
}
