package healthendpoint

import (
	"net/http"

	"github.com/tablescaler/tablescaler/helpers/handlers"
)

type (
	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

func readiness(checkers []Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := make([]ReadinessCheck, 0, len(checkers))
		overallStatus := StatusUp
		for _, checker := range checkers {
			check := checker()
			checks = append(checks, check)
			if check.Status == StatusDown {
				overallStatus = StatusDown
			}
		}
		status := http.StatusOK
		if overallStatus == StatusDown {
			status = http.StatusServiceUnavailable
		}
		handlers.WriteJSONResponse(w, status, readinessResponse{OverallStatus: overallStatus, Checks: checks})
	}
}

// SchedulerChecker reports DOWN unless the scaling loop is running.
func SchedulerChecker(name string, isRunning func() bool) Checker {
	return func() ReadinessCheck {
		status := StatusDown
		if isRunning() {
			status = StatusUp
		}
		return ReadinessCheck{Name: name, Type: "scheduler", Status: status}
	}
}
