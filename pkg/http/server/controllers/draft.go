package controllers

import (
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/service/draft"
	"statusdrafter/pkg/utils"
)

type draftController struct {
	draftService draft.DraftService
	logger       hclog.Logger
}

type DraftHTTPController interface {
	CreateOneDraft(w http.ResponseWriter, r *http.Request)
	ListDrafts(w http.ResponseWriter, r *http.Request)
	DeleteOneDraft(w http.ResponseWriter, r *http.Request)
}

type createDraftRequest struct {
	Type      models.DraftType `json:"type"`
	Content   string           `json:"content"`
	ProjectID *int64           `json:"project_id"`
	RoleID    *int64           `json:"role_id"`
}

func NewDraftController(logger hclog.Logger, draftService draft.DraftService) DraftHTTPController {
	return &draftController{
		draftService: draftService,
		logger:       logger.Named("draft-controller"),
	}
}

func (controller *draftController) CreateOneDraft(w http.ResponseWriter, r *http.Request) {
	body := createDraftRequest{}
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.SendError(w, err)
		return
	}

	created, err := controller.draftService.CreateOne(models.Draft{
		Type:      body.Type,
		Content:   body.Content,
		ProjectID: body.ProjectID,
		RoleID:    body.RoleID,
	})
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, created)
}

// ListDrafts returns the newest drafts, ?limit defaults to 50
func (controller *draftController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	limit := utils.GetIntQueryParam(r, "limit", constants.DefaultDraftsLimit)

	drafts, err := controller.draftService.List(limit)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, drafts)
}

func (controller *draftController) DeleteOneDraft(w http.ResponseWriter, r *http.Request) {
	draftId, err := utils.GetIDPathParam(r, "id")
	if err != nil {
		utils.SendError(w, err)
		return
	}

	changes, err := controller.draftService.DeleteOneByID(models.Draft{ID: draftId})
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendDeleted(w, &changes)
}
