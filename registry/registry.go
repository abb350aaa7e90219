package registry

import (
	"sync"

	"golang.org/x/exp/maps"

	"github.com/tablescaler/tablescaler/models"

	"code.cloudfoundry.org/lager/v3"
)

// Registry holds the scaling config of every index the service manages. It is
// shared between the scheduler, which reads snapshots, and the admin API and
// startup code, which mutate it.
type Registry struct {
	logger  lager.Logger
	configs map[models.Index]models.IndexScalingConfig
	lock    sync.RWMutex
}

func NewRegistry(logger lager.Logger) *Registry {
	return &Registry{
		logger:  logger.Session("registry"),
		configs: make(map[models.Index]models.IndexScalingConfig),
	}
}

// AddOrReplace stores conf under its index, replacing any previous config.
// Invalid configs are rejected and leave the registry unchanged.
func (r *Registry) AddOrReplace(conf models.IndexScalingConfig) error {
	if err := conf.Validate(); err != nil {
		r.logger.Error("failed-to-add-index", err, lager.Data{"index": conf.Index.String()})
		return err
	}

	r.lock.Lock()
	_, replaced := r.configs[conf.Index]
	r.configs[conf.Index] = conf
	r.lock.Unlock()

	r.logger.Info("index-added", lager.Data{"index": conf.Index.String(), "replaced": replaced})
	return nil
}

func (r *Registry) Remove(index models.Index) (models.IndexScalingConfig, bool) {
	r.lock.Lock()
	conf, found := r.configs[index]
	delete(r.configs, index)
	r.lock.Unlock()

	if found {
		r.logger.Info("index-removed", lager.Data{"index": index.String()})
	}
	return conf, found
}

func (r *Registry) Get(index models.Index) (models.IndexScalingConfig, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	conf, found := r.configs[index]
	return conf, found
}

// Snapshot returns a copy of the registered configs in no particular order.
// Changes made after the call are not reflected in the returned slice.
func (r *Registry) Snapshot() []models.IndexScalingConfig {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return maps.Values(r.configs)
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.configs)
}
