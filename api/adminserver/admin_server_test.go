package adminserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tablescaler/tablescaler/api/adminserver"
	"github.com/tablescaler/tablescaler/fakes"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/ratelimiter"
	"github.com/tablescaler/tablescaler/registry"
	"github.com/tablescaler/tablescaler/routes"
)

var _ = Describe("AdminServer", func() {
	var (
		logger              *lagertest.TestLogger
		conf                adminserver.Config
		indexRegistry       *registry.Registry
		httpStatusCollector *fakes.FakeHTTPStatusCollector
		router              *mux.Router
		resp                *httptest.ResponseRecorder
		orders              models.IndexScalingConfig
		byCustomer          models.IndexScalingConfig
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("admin-server")
		conf = adminserver.Config{}
		indexRegistry = registry.NewRegistry(logger)
		httpStatusCollector = &fakes.FakeHTTPStatusCollector{}
		resp = httptest.NewRecorder()

		orders = models.NewIndexScalingConfig(models.NewIndex("orders", ""))
		byCustomer = models.NewIndexScalingConfig(models.NewIndex("orders", "by-customer"))
		byCustomer.MaxRead = 200
		Expect(indexRegistry.AddOrReplace(byCustomer)).To(Succeed())
		Expect(indexRegistry.AddOrReplace(orders)).To(Succeed())
	})

	JustBeforeEach(func() {
		var err error
		server := adminserver.NewAdminServer(logger, conf, indexRegistry, httpStatusCollector, fakeclock.NewFakeClock(time.Now()))
		router, err = server.Router()
		Expect(err).NotTo(HaveOccurred())
	})

	serve := func(method string, path string, body string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		router.ServeHTTP(resp, req)
	}

	Describe("ListIndexes", func() {
		It("returns every registered config in order", func() {
			serve(http.MethodGet, "/v1/indexes", "")
			Expect(resp.Code).To(Equal(http.StatusOK))

			var list adminserver.IndexesResponse
			Expect(json.Unmarshal(resp.Body.Bytes(), &list)).To(Succeed())
			Expect(list.TotalResults).To(Equal(2))
			Expect(list.Indexes).To(Equal([]models.IndexScalingConfig{orders, byCustomer}))
		})

		It("counts the request", func() {
			serve(http.MethodGet, "/v1/indexes", "")
			Expect(httpStatusCollector.IncConcurrentHTTPRequestCallCount()).To(Equal(1))
			Expect(httpStatusCollector.DecConcurrentHTTPRequestCallCount()).To(Equal(1))

			route, statusCode, _ := httpStatusCollector.ObserveHTTPRequestArgsForCall(0)
			Expect(route).To(Equal(routes.ListIndexesRouteName))
			Expect(statusCode).To(Equal(http.StatusOK))
		})
	})

	Describe("GetIndex", func() {
		It("returns the table config", func() {
			serve(http.MethodGet, "/v1/indexes/orders", "")
			Expect(resp.Code).To(Equal(http.StatusOK))

			var got models.IndexScalingConfig
			Expect(json.Unmarshal(resp.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal(orders))
		})

		It("returns the gsi config", func() {
			serve(http.MethodGet, "/v1/indexes/orders/gsi/by-customer", "")
			Expect(resp.Code).To(Equal(http.StatusOK))

			var got models.IndexScalingConfig
			Expect(json.Unmarshal(resp.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal(byCustomer))
		})

		It("returns 404 for an unknown index", func() {
			serve(http.MethodGet, "/v1/indexes/invoices", "")
			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(resp.Body.String()).To(MatchJSON(`{"code":"Not Found","message":"Index invoices is not registered"}`))
		})
	})

	Describe("PutIndex", func() {
		It("registers a new index with defaults for omitted fields", func() {
			serve(http.MethodPut, "/v1/indexes/invoices", `{"max_write":80}`)
			Expect(resp.Code).To(Equal(http.StatusOK))

			expected := models.NewIndexScalingConfig(models.NewIndex("invoices", ""))
			expected.MaxWrite = 80
			stored, found := indexRegistry.Get(expected.Index)
			Expect(found).To(BeTrue())
			Expect(stored).To(Equal(expected))

			var got models.IndexScalingConfig
			Expect(json.Unmarshal(resp.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal(expected))
		})

		It("replaces an existing gsi config", func() {
			serve(http.MethodPut, "/v1/indexes/orders/gsi/by-customer", `{"enable_upscale":false}`)
			Expect(resp.Code).To(Equal(http.StatusOK))

			stored, _ := indexRegistry.Get(byCustomer.Index)
			Expect(stored.EnableUpscale).To(BeFalse())
			Expect(stored.MaxRead).To(Equal(models.DefaultMaxCapacity))
			Expect(indexRegistry.Len()).To(Equal(2))
		})

		It("rejects an invalid config and leaves the registry unchanged", func() {
			serve(http.MethodPut, "/v1/indexes/orders", `{"min_read":100,"max_read":10}`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))

			var validation models.ValidationErrorResponse
			Expect(json.Unmarshal(resp.Body.Bytes(), &validation)).To(Succeed())
			Expect(validation.Code).To(Equal("Bad Request"))
			Expect(validation.Message).To(Equal("Invalid index config"))
			Expect(validation.Errors).To(HaveLen(1))
			Expect(validation.Errors[0].Description).To(ContainSubstring("min_read 100 is greater than max_read 10"))

			stored, _ := indexRegistry.Get(orders.Index)
			Expect(stored).To(Equal(orders))
		})

		It("rejects a body that is not json", func() {
			serve(http.MethodPut, "/v1/indexes/orders", `not-json`)
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DeleteIndex", func() {
		It("removes the index and returns its config", func() {
			serve(http.MethodDelete, "/v1/indexes/orders/gsi/by-customer", "")
			Expect(resp.Code).To(Equal(http.StatusOK))

			var got models.IndexScalingConfig
			Expect(json.Unmarshal(resp.Body.Bytes(), &got)).To(Succeed())
			Expect(got).To(Equal(byCustomer))

			_, found := indexRegistry.Get(byCustomer.Index)
			Expect(found).To(BeFalse())
			_, found = indexRegistry.Get(orders.Index)
			Expect(found).To(BeTrue())
		})

		It("returns 404 for an unknown index", func() {
			serve(http.MethodDelete, "/v1/indexes/orders/gsi/by-status", "")
			Expect(resp.Code).To(Equal(http.StatusNotFound))
		})
	})

	It("rejects unsupported methods", func() {
		serve(http.MethodPost, "/v1/indexes/orders", "{}")
		Expect(resp.Code).To(Equal(http.StatusMethodNotAllowed))
	})

	Context("with basic auth configured", func() {
		BeforeEach(func() {
			conf.BasicAuth = models.BasicAuth{Username: "admin", Password: "secret"}
		})

		It("rejects requests without credentials", func() {
			serve(http.MethodGet, "/v1/indexes", "")
			Expect(resp.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts requests with valid credentials", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/indexes", nil)
			req.SetBasicAuth("admin", "secret")
			router.ServeHTTP(resp, req)
			Expect(resp.Code).To(Equal(http.StatusOK))
		})
	})

	Context("with rate limiting configured", func() {
		BeforeEach(func() {
			conf.RateLimit = ratelimiter.Config{MaxAmount: 1, ValidDuration: time.Hour}
		})

		It("rejects a client once its burst is used up", func() {
			codes := make([]int, 0, 21)
			for i := 0; i < 21; i++ {
				resp = httptest.NewRecorder()
				serve(http.MethodGet, "/v1/indexes", "")
				codes = append(codes, resp.Code)
			}
			Expect(codes[:20]).To(HaveEach(http.StatusOK))
			Expect(codes[20]).To(Equal(http.StatusTooManyRequests))
		})
	})
})
