package controllers

import (
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/db"
	"statusdrafter/pkg/utils"
)

type HealthCheckController interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

type healthCheckController struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

type healthCheckRes struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	SchemaVersion int    `json:"schemaVersion"`
}

func NewHealthCheckController(logger hclog.Logger, dataStore db.DataStore) HealthCheckController {
	return &healthCheckController{
		dataStore: dataStore,
		logger:    logger.Named("healthcheck-controller"),
	}
}

func (controller *healthCheckController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	res := healthCheckRes{
		Status:  "ok",
		Version: constants.Version,
	}

	if controller.dataStore != nil {
		version, err := controller.dataStore.CurrentVersion()
		if err != nil {
			controller.logger.Error("healthcheck failed to read schema version", "error", err.Error())
			utils.SendJSON(w, healthCheckRes{Status: "unavailable", Version: constants.Version}, http.StatusServiceUnavailable, nil)
			return
		}
		res.SchemaVersion = version
	}

	utils.SendSuccess(w, res)
}
