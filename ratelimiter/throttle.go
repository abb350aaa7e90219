package ratelimiter

import (
	"net"
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/tablescaler/tablescaler/helpers/handlers"
	"github.com/tablescaler/tablescaler/models"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(r *http.Request) string

// ClientIPKey counts requests per remote host.
func ClientIPKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Throttle answers 429 to clients the limiter turns away. Requests without
// a key are rejected with 400 since they cannot be counted.
func Throttle(limiter Limiter, keyFunc KeyFunc, logger lager.Logger) func(http.Handler) http.Handler {
	logger = logger.Session("throttle")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				logger.Error("missing-rate-limit-key", nil, lager.Data{"url": r.URL.String()})
				handlers.WriteErrorResponse(w, http.StatusBadRequest, "Missing rate limit key")
				return
			}
			if limiter.ExceedsLimit(key) {
				logger.Info("rate-limit-exceeded", lager.Data{"key": key})
				handlers.WriteJSONResponse(w, http.StatusTooManyRequests, models.ErrorResponse{
					Code:    "Request-Limit-Exceeded",
					Message: "Too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
