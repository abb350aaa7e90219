package startup

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

// Service is a named process member whose runner is built on startup.
type Service struct {
	Name  string
	Build func() (ifrit.Runner, error)
}

// Server names a runner that still has to be built, e.g. an http server
// whose router construction can fail.
func Server(name string, build func() (ifrit.Runner, error)) Service {
	return Service{Name: name, Build: build}
}

// Runner names a runner that already exists.
func Runner(name string, runner ifrit.Runner) Service {
	return Service{
		Name:  name,
		Build: func() (ifrit.Runner, error) { return runner, nil },
	}
}

// BuildMembers builds every service in order. The first build failure is
// returned and the remaining services are not built.
func BuildMembers(logger lager.Logger, services ...Service) (grouper.Members, error) {
	members := make(grouper.Members, 0, len(services))
	for _, service := range services {
		runner, err := service.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", service.Name, err)
		}
		logger.Debug("member-built", lager.Data{"name": service.Name})
		members = append(members, grouper.Member{Name: service.Name, Runner: runner})
	}
	return members, nil
}

// StartService builds the services and runs them in order until the process
// is signalled. It exits the process when a service cannot be built or fails.
func StartService(logger lager.Logger, services ...Service) {
	members, err := BuildMembers(logger, services...)
	ExitOnError(logger, err, "failed-to-build-services")
	ExitOnError(logger, runMembers(logger, members), "service-failed")
}

func runMembers(logger lager.Logger, members grouper.Members) error {
	process := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started", lager.Data{"members": len(members)})

	if err := <-process.Wait(); err != nil {
		return err
	}
	logger.Info("exited")
	return nil
}
