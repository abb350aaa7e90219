package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	IndexesPath          = "/v1/indexes"
	ListIndexesRouteName = "ListIndexes"

	TableIndexPath       = "/v1/indexes/{tableName}"
	GetTableRouteName    = "GetTableIndex"
	PutTableRouteName    = "PutTableIndex"
	DeleteTableRouteName = "DeleteTableIndex"

	GSIIndexPath       = "/v1/indexes/{tableName}/gsi/{gsiName}"
	GetGSIRouteName    = "GetGSIIndex"
	PutGSIRouteName    = "PutGSIIndex"
	DeleteGSIRouteName = "DeleteGSIIndex"

	TableNameVar = "tableName"
	GSINameVar   = "gsiName"
)

// AdminRoutes returns a fresh router with the named index admin routes and no
// handlers attached.
func AdminRoutes() *mux.Router {
	r := mux.NewRouter()

	r.Path(IndexesPath).Methods(http.MethodGet).Name(ListIndexesRouteName)

	r.Path(TableIndexPath).Methods(http.MethodGet).Name(GetTableRouteName)
	r.Path(TableIndexPath).Methods(http.MethodPut).Name(PutTableRouteName)
	r.Path(TableIndexPath).Methods(http.MethodDelete).Name(DeleteTableRouteName)

	r.Path(GSIIndexPath).Methods(http.MethodGet).Name(GetGSIRouteName)
	r.Path(GSIIndexPath).Methods(http.MethodPut).Name(PutGSIRouteName)
	r.Path(GSIIndexPath).Methods(http.MethodDelete).Name(DeleteGSIRouteName)

	return r
}
