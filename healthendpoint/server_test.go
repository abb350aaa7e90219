package healthendpoint_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablescaler/tablescaler/healthendpoint"
	"github.com/tablescaler/tablescaler/helpers"
)

var _ = Describe("Health Server", func() {
	var (
		router    *mux.Router
		routerErr error
		config    helpers.HealthConfig
		checkers  []healthendpoint.Checker
		running   bool
		registry  *prometheus.Registry
		recorder  *httptest.ResponseRecorder
		req       *http.Request
	)

	BeforeEach(func() {
		config = helpers.HealthConfig{ReadinessCheckEnabled: true}
		running = true
		checkers = []healthendpoint.Checker{
			healthendpoint.SchedulerChecker("scheduler", func() bool { return running }),
		}
		registry = prometheus.NewRegistry()
		registry.MustRegister(healthendpoint.NewRegisteredIndexesCollector("tablescaler", "scaler", func() int { return 3 }))
		recorder = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		router, routerErr = healthendpoint.NewHealthRouter(config, checkers, lagertest.NewTestLogger("health"), registry)
	})

	serve := func() {
		Expect(routerErr).NotTo(HaveOccurred())
		router.ServeHTTP(recorder, req)
	}

	Context("without basic auth configured", func() {
		It("serves the prometheus metrics", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring("tablescaler_scaler_registered_indexes 3"))
		})

		It("serves the metrics on any other path", func() {
			req = httptest.NewRequest(http.MethodGet, "/anything", nil)
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("with cleartext basic auth configured", func() {
		BeforeEach(func() {
			config.BasicAuth.Username = "username"
			config.BasicAuth.Password = "password"
		})

		It("rejects requests without credentials", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			serve()
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects requests with wrong credentials", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			req.SetBasicAuth("username", "wrong")
			serve()
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts requests with valid credentials", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			req.SetBasicAuth("username", "password")
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("leaves the readiness endpoint unauthenticated", func() {
			req = httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("with hashed basic auth configured", func() {
		BeforeEach(func() {
			usernameHash, err := bcrypt.GenerateFromPassword([]byte("username"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			passwordHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			config.BasicAuth.UsernameHash = string(usernameHash)
			config.BasicAuth.PasswordHash = string(passwordHash)
		})

		It("accepts the matching cleartext credentials", func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
			req.SetBasicAuth("username", "password")
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("readiness", func() {
		var response map[string]interface{}

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
			serve()
			Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		})

		When("the scheduler is running", func() {
			It("reports UP", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(response["overall_status"]).To(Equal("UP"))
				Expect(response["checks"]).To(ConsistOf(map[string]interface{}{
					"name": "scheduler", "type": "scheduler", "status": "UP",
				}))
			})
		})

		When("the scheduler is not running", func() {
			BeforeEach(func() {
				running = false
			})

			It("reports DOWN", func() {
				Expect(recorder.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(response["overall_status"]).To(Equal("DOWN"))
			})
		})

		When("there are no checkers", func() {
			BeforeEach(func() {
				checkers = nil
			})

			It("reports UP with no checks", func() {
				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(response["overall_status"]).To(Equal("UP"))
				Expect(response["checks"]).To(BeEmpty())
			})
		})
	})

	When("the readiness check is disabled", func() {
		BeforeEach(func() {
			config.ReadinessCheckEnabled = false
		})

		It("falls through to the metrics handler", func() {
			req = httptest.NewRequest(http.MethodGet, "/health/readiness", nil)
			serve()
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).NotTo(Equal("application/json"))
		})
	})

	Describe("NewHealthServer", func() {
		It("creates a runner", func() {
			runner, err := healthendpoint.NewHealthServer(config, checkers, lagertest.NewTestLogger("health"), registry)
			Expect(err).NotTo(HaveOccurred())
			Expect(runner).NotTo(BeNil())
		})
	})
})
