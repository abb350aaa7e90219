package startup

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"

	"github.com/tablescaler/tablescaler/helpers"
)

// ErrMissingConfigPath is returned when no config file was passed with -c.
var ErrMissingConfigPath = errors.New("no config file given, pass one with -c")

// Config is a loaded process config that can check itself and says how the
// process should log.
type Config interface {
	Validate() error
	GetLogging() *helpers.LoggingConfig
}

type ConfigLoader[T Config] func(path string) (T, error)

// LoadConfig loads the config at path and validates it. Failures are logged
// under a load-config session before being returned.
func LoadConfig[T Config](logger lager.Logger, path string, load ConfigLoader[T]) (T, error) {
	var zero T
	logger = logger.Session("load-config", lager.Data{"path": path})

	if path == "" {
		logger.Error("missing-config-path", ErrMissingConfigPath)
		return zero, ErrMissingConfigPath
	}

	conf, err := load(path)
	if err != nil {
		logger.Error("failed-to-read-config", err)
		return zero, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := conf.Validate(); err != nil {
		logger.Error("failed-to-validate-config", err)
		return zero, fmt.Errorf("validating %s: %w", path, err)
	}

	logger.Debug("loaded")
	return conf, nil
}

// ExitOnError logs err under action and exits with status 1. It does
// nothing when err is nil.
func ExitOnError(logger lager.Logger, err error, action string, data ...lager.Data) {
	if err == nil {
		return
	}
	logger.Error(action, err, data...)
	os.Exit(1)
}

// Bootstrap reads the -c flag and loads the config it names, then builds the
// configured logger. Load failures are written to stdout by a plain info
// logger, since the configured one does not exist yet, and end the process.
func Bootstrap[T Config](serviceName string, load ConfigLoader[T]) (T, lager.Logger) {
	flags := flag.NewFlagSet(serviceName, flag.ExitOnError)
	path := flags.String("c", "", "path to the "+serviceName+" config file")
	_ = flags.Parse(os.Args[1:])

	bootLogger := lager.NewLogger(serviceName)
	bootLogger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))

	conf, err := LoadConfig(bootLogger, *path, load)
	if err != nil {
		os.Exit(1)
	}

	return conf, helpers.InitLoggerFromConfig(conf.GetLogging(), serviceName)
}
