package adminserver

import (
	"net/http"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"

	"github.com/tablescaler/tablescaler/healthendpoint"
	"github.com/tablescaler/tablescaler/helpers"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/ratelimiter"
	"github.com/tablescaler/tablescaler/routes"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vh(w, r, mux.Vars(r))
}

type Config struct {
	ServerConfig helpers.ServerConfig
	BasicAuth    models.BasicAuth
	RateLimit    ratelimiter.Config
}

type AdminServer struct {
	logger              lager.Logger
	conf                Config
	registry            IndexRegistry
	httpStatusCollector healthendpoint.HTTPStatusCollector
	limiter             *ratelimiter.ClientLimiter
}

func NewAdminServer(logger lager.Logger, conf Config, registry IndexRegistry, httpStatusCollector healthendpoint.HTTPStatusCollector, clk clock.Clock) *AdminServer {
	s := &AdminServer{
		logger:              logger.Session("admin-server"),
		conf:                conf,
		registry:            registry,
		httpStatusCollector: httpStatusCollector,
	}
	if conf.RateLimit.IsEnabled() {
		s.limiter = ratelimiter.DefaultClientLimiter(conf.RateLimit, clk, s.logger)
	}
	return s
}

// Router wires the index handlers behind the status collector, the optional
// rate limiter and the optional basic auth, in that order.
func (s *AdminServer) Router() (*mux.Router, error) {
	r := routes.AdminRoutes()
	r.Use(healthendpoint.NewHTTPStatusCollectMiddleware(s.httpStatusCollector).Collect)

	if s.limiter != nil {
		r.Use(ratelimiter.Throttle(s.limiter, ratelimiter.ClientIPKey, s.logger))
	}

	if s.conf.BasicAuth.IsEnabled() {
		basicAuth, err := healthendpoint.NewBasicAuthMiddleware(s.logger, s.conf.BasicAuth)
		if err != nil {
			return nil, err
		}
		r.Use(basicAuth.Middleware)
	}

	h := NewIndexHandler(s.logger, s.registry)
	r.Get(routes.ListIndexesRouteName).Handler(VarsFunc(h.ListIndexes))
	r.Get(routes.GetTableRouteName).Handler(VarsFunc(h.GetIndex))
	r.Get(routes.PutTableRouteName).Handler(VarsFunc(h.PutIndex))
	r.Get(routes.DeleteTableRouteName).Handler(VarsFunc(h.DeleteIndex))
	r.Get(routes.GetGSIRouteName).Handler(VarsFunc(h.GetIndex))
	r.Get(routes.PutGSIRouteName).Handler(VarsFunc(h.PutIndex))
	r.Get(routes.DeleteGSIRouteName).Handler(VarsFunc(h.DeleteIndex))

	return r, nil
}

func (s *AdminServer) GetServer() (ifrit.Runner, error) {
	r, err := s.Router()
	if err != nil {
		return nil, err
	}
	httpServer := helpers.NewHTTPServer(s.logger, s.conf.ServerConfig, r)
	if s.limiter == nil {
		return httpServer, nil
	}
	return grouper.NewOrdered(os.Interrupt, grouper.Members{
		{Name: "rate-limit-sweeper", Runner: s.limiter.Sweeper(ratelimiter.DefaultSweepInterval)},
		{Name: "http-server", Runner: httpServer},
	}), nil
}
