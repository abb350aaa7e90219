package adminserver

import (
	"io"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/exp/slices"

	"github.com/tablescaler/tablescaler/api/indexvalidator"
	"github.com/tablescaler/tablescaler/helpers/handlers"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/routes"
)

const maxRequestBodyBytes = 64 * 1024

type IndexRegistry interface {
	AddOrReplace(conf models.IndexScalingConfig) error
	Remove(index models.Index) (models.IndexScalingConfig, bool)
	Get(index models.Index) (models.IndexScalingConfig, bool)
	Snapshot() []models.IndexScalingConfig
}

type IndexesResponse struct {
	TotalResults int                         `json:"total_results"`
	Indexes      []models.IndexScalingConfig `json:"indexes"`
}

type IndexHandler struct {
	logger    lager.Logger
	registry  IndexRegistry
	validator *indexvalidator.IndexValidator
}

func NewIndexHandler(logger lager.Logger, registry IndexRegistry) *IndexHandler {
	return &IndexHandler{
		logger:    logger.Session("index-handler"),
		registry:  registry,
		validator: indexvalidator.NewIndexValidator(),
	}
}

func indexFromVars(vars map[string]string) models.Index {
	return models.NewIndex(vars[routes.TableNameVar], vars[routes.GSINameVar])
}

// ListIndexes returns the registered configs ordered by table and index name.
func (h *IndexHandler) ListIndexes(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	configs := h.registry.Snapshot()
	slices.SortFunc(configs, func(a, b models.IndexScalingConfig) int {
		if c := strings.Compare(a.TableName, b.TableName); c != 0 {
			return c
		}
		return strings.Compare(a.GSIName, b.GSIName)
	})
	handlers.WriteJSONResponse(w, http.StatusOK, IndexesResponse{
		TotalResults: len(configs),
		Indexes:      configs,
	})
}

func (h *IndexHandler) GetIndex(w http.ResponseWriter, _ *http.Request, vars map[string]string) {
	index := indexFromVars(vars)
	conf, found := h.registry.Get(index)
	if !found {
		h.logger.Info("index-not-found", lager.Data{"index": index.String()})
		handlers.WriteErrorResponse(w, http.StatusNotFound, "Index "+index.String()+" is not registered")
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, conf)
}

// PutIndex registers the config in the body for the index named by the path,
// replacing any config already registered for it.
func (h *IndexHandler) PutIndex(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	index := indexFromVars(vars)
	logger := h.logger.Session("put-index", lager.Data{"index": index.String()})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		logger.Error("failed-to-read-request-body", err)
		handlers.WriteErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	conf, errs := h.validator.ParseAndValidate(body, index)
	if len(errs) > 0 {
		logger.Info("invalid-index-config", lager.Data{"errors": errs})
		handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{
			Code:    http.StatusText(http.StatusBadRequest),
			Message: "Invalid index config",
			Errors:  errs,
		})
		return
	}

	err = h.registry.AddOrReplace(*conf)
	if err != nil {
		logger.Error("failed-to-register-index", err)
		handlers.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, conf)
}

// DeleteIndex stops scaling the index and returns the config it had.
func (h *IndexHandler) DeleteIndex(w http.ResponseWriter, _ *http.Request, vars map[string]string) {
	index := indexFromVars(vars)
	conf, found := h.registry.Remove(index)
	if !found {
		h.logger.Info("index-not-found", lager.Data{"index": index.String()})
		handlers.WriteErrorResponse(w, http.StatusNotFound, "Index "+index.String()+" is not registered")
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, conf)
}
