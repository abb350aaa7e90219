package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablescaler/tablescaler/helpers"
	"github.com/tablescaler/tablescaler/models"
)

type BasicAuthMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *BasicAuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()

		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="tablescaler"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewBasicAuthMiddleware hashes cleartext credentials once so that every
// request is compared in constant time against bcrypt hashes.
func NewBasicAuthMiddleware(logger lager.Logger, auth models.BasicAuth) (*BasicAuthMiddleware, error) {
	usernameHash, err := hashBytes(auth.UsernameHash, auth.Username)
	if err != nil {
		logger.Error("failed-new-server-username", err)
		return nil, err
	}
	passwordHash, err := hashBytes(auth.PasswordHash, auth.Password)
	if err != nil {
		logger.Error("failed-new-server-password", err)
		return nil, err
	}
	return &BasicAuthMiddleware{usernameHash: usernameHash, passwordHash: passwordHash}, nil
}

func hashBytes(hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	// MinCost: the config already holds the value in cleartext
	return bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
}

func NewHealthServer(conf helpers.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	router, err := NewHealthRouter(conf, checkers, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), conf.ServerConfig, router), nil
}

// NewHealthRouter serves prometheus metrics on every path except
// /health/readiness, which stays unauthenticated when enabled.
func NewHealthRouter(conf helpers.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle("/health/readiness", readiness(checkers)).Methods(http.MethodGet)
	}

	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	if !conf.BasicAuth.IsEnabled() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuth, err := NewBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}
	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuth.Middleware)
	everything.PathPrefix("").Handler(promHandler)
	return router, nil
}
