package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/tablescaler/tablescaler/models"

	"code.cloudfoundry.org/lager/v3"
)

var handlersLogger = newHandlersLogger()

func newHandlersLogger() lager.Logger {
	logger := lager.NewLogger("helpers.handlers")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	return logger
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, jsonObj interface{}) {
	logger := handlersLogger.Session("WriteJSONResponse", lager.Data{"statusCode": statusCode})
	jsonBytes, err := json.Marshal(jsonObj)
	if err != nil {
		logger.Error("marshall-json-response", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(jsonBytes)
	if err != nil {
		logger.Error("write-json-response", err)
	}
}

// WriteErrorResponse writes an ErrorResponse whose code is the status text.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, models.ErrorResponse{
		Code:    http.StatusText(statusCode),
		Message: message,
	})
}
