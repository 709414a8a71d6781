package draft

import (
	"github.com/hashicorp/go-hclog"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/repository/draft"
	"statusdrafter/pkg/utils"
)

type draftService struct {
	draftRepo draft.DraftRepo
	logger    hclog.Logger
}

//go:generate mockery --name DraftService --output ./ --inpackage
type DraftService interface {
	CreateOne(draft models.Draft) (*models.CreatedDraft, *utils.GenericError)
	List(limit int64) ([]models.Draft, *utils.GenericError)
	DeleteOneByID(draft models.Draft) (int64, *utils.GenericError)
	Count() (int64, *utils.GenericError)
}

func NewDraftService(logger hclog.Logger, draftRepo draft.DraftRepo) DraftService {
	return &draftService{
		draftRepo: draftRepo,
		logger:    logger.Named("draft-service"),
	}
}

// CreateOne stores a rendered draft and echoes back id, type and content
func (draftService *draftService) CreateOne(draft models.Draft) (*models.CreatedDraft, *utils.GenericError) {
	_, err := draftService.draftRepo.CreateOne(&draft)
	if err != nil {
		return nil, err
	}
	draftService.logger.Debug("created draft", "id", draft.ID, "type", draft.Type)
	return &models.CreatedDraft{
		ID:      draft.ID,
		Type:    draft.Type,
		Content: draft.Content,
	}, nil
}

func (draftService *draftService) List(limit int64) ([]models.Draft, *utils.GenericError) {
	return draftService.draftRepo.List(limit)
}

// DeleteOneByID returns the number of deleted drafts
func (draftService *draftService) DeleteOneByID(draft models.Draft) (int64, *utils.GenericError) {
	count, err := draftService.draftRepo.DeleteOneByID(draft)
	if err != nil {
		return 0, err
	}
	draftService.logger.Debug("deleted draft", "id", draft.ID, "changes", count)
	return count, nil
}

func (draftService *draftService) Count() (int64, *utils.GenericError) {
	return draftService.draftRepo.Count()
}
