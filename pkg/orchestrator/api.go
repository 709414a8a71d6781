package orchestrator

import (
	"context"
	"statusdrafter/pkg/models"
)

//go:generate mockery --name API --output ./ --inpackage
type API interface {
	ListDrafts(ctx context.Context, limit int64) ([]models.Draft, error)
	CreateDraft(ctx context.Context, draft models.Draft) (*models.CreatedDraft, error)
	DeleteDraft(ctx context.Context, id int64) (int64, error)
	Enhance(ctx context.Context, fields map[string]string) (map[string]string, error)
}
