package healthendpoint

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// DefaultCollectors expose the process and go runtime metrics.
func DefaultCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			PidFn: func() (int, error) {
				return os.Getpid(), nil
			},
		}),
		collectors.NewGoCollector(),
	}
}

// RegisterCollectors registers every collector, including those after a
// failing one, and returns all registration errors joined.
func RegisterCollectors(registrar prometheus.Registerer, logger lager.Logger, cols ...prometheus.Collector) error {
	var errs []error
	for _, c := range cols {
		if err := registrar.Register(c); err != nil {
			name := fmt.Sprintf("%T", c)
			logger.Error("failed-to-register-collector", err, lager.Data{"collector": name})
			errs = append(errs, fmt.Errorf("failed to register %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
