package controllers

import (
	"encoding/json"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/service/enhancer"
	"statusdrafter/pkg/utils"
)

type enhanceController struct {
	enhancerService enhancer.EnhancerService
	logger          hclog.Logger
}

type EnhanceHTTPController interface {
	Enhance(w http.ResponseWriter, r *http.Request)
}

type enhanceRequest struct {
	Fields json.RawMessage `json:"fields"`
}

// EnhanceResponse is sent as is, without the success envelope
type EnhanceResponse struct {
	Enhanced map[string]string `json:"enhanced"`
}

func NewEnhanceController(logger hclog.Logger, enhancerService enhancer.EnhancerService) EnhanceHTTPController {
	return &enhanceController{
		enhancerService: enhancerService,
		logger:          logger.Named("enhance-controller"),
	}
}

func (controller *enhanceController) Enhance(w http.ResponseWriter, r *http.Request) {
	fieldsRequired := utils.HTTPGenericError(http.StatusBadRequest, enhancer.MessageFieldsRequired)

	body := enhanceRequest{}
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.SendError(w, fieldsRequired)
		return
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body.Fields, &fields); err != nil || fields == nil {
		utils.SendError(w, fieldsRequired)
		return
	}

	enhanced, err := controller.enhancerService.Enhance(r.Context(), fields)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendJSON(w, EnhanceResponse{Enhanced: enhanced}, http.StatusOK, nil)
}
