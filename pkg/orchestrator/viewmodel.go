package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/dashboard"
	"statusdrafter/pkg/draftime"
	"statusdrafter/pkg/formatter"
	"statusdrafter/pkg/models"
	"strings"
	"sync"
)

var (
	// ErrStaleResponse is returned when a newer dashboard refresh was issued
	// while this one was in flight. The older response is dropped.
	ErrStaleResponse    = errors.New("stale dashboard response discarded")
	ErrNothingToEnhance = errors.New("nothing to enhance, all text fields are empty")
	ErrDraftNotLoaded   = errors.New("draft is not in the loaded dashboard data")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownAction    = errors.New("unknown action")
)

// ViewModel owns the editor and dashboard state of a client session
type ViewModel struct {
	logger hclog.Logger
	api    API
	clock  *draftime.DrafterTime

	Mode      models.DraftType
	Fields    models.DraftFields
	Text      string
	ProjectID *int64
	RoleID    *int64
	Query     dashboard.Query

	mu     sync.Mutex
	seq    uint64
	drafts []models.Draft
}

func NewViewModel(logger hclog.Logger, api API, clock *draftime.DrafterTime) *ViewModel {
	vm := &ViewModel{
		logger: logger.Named("orchestrator"),
		api:    api,
		clock:  clock,
		Mode:   models.DailyDraft,
		Fields: models.NewDraftFields(),
		Query:  dashboard.DefaultQuery(),
	}
	vm.Fields.DateRange = formatter.DefaultDateRange(vm.Mode, clock.Now())
	vm.Preview()
	return vm
}

// SetMode switches between daily and weekly and resets the date field to the mode's default
func (vm *ViewModel) SetMode(mode models.DraftType) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid draft type %q", mode)
	}
	vm.Mode = mode
	vm.Fields.DateRange = formatter.DefaultDateRange(mode, vm.clock.Now())
	vm.Preview()
	return nil
}

func (vm *ViewModel) SetField(name string, value string) error {
	if !vm.Fields.Set(name, value) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	vm.Preview()
	return nil
}

// SelectProject tags new drafts with a project, the role selection is cleared
func (vm *ViewModel) SelectProject(projectID *int64) {
	vm.ProjectID = projectID
	vm.RoleID = nil
}

func (vm *ViewModel) SelectRole(roleID *int64) {
	vm.RoleID = roleID
}

// Preview renders the fields into the editor text
func (vm *ViewModel) Preview() string {
	vm.Text = formatter.Format(vm.Mode, vm.Fields, vm.clock.Now())
	return vm.Text
}

// Save persists the editor text as it currently reads
func (vm *ViewModel) Save(ctx context.Context) (*models.CreatedDraft, error) {
	created, err := vm.api.CreateDraft(ctx, models.Draft{
		Type:      vm.Mode,
		Content:   vm.Text,
		ProjectID: vm.ProjectID,
		RoleID:    vm.RoleID,
	})
	if err != nil {
		vm.logger.Error("failed to save draft", "error", err.Error())
		return nil, err
	}
	vm.logger.Debug("saved draft", "id", created.ID, "type", created.Type)
	return created, nil
}

func (vm *ViewModel) History(ctx context.Context) ([]models.Draft, error) {
	return vm.api.ListDrafts(ctx, constants.HistoryDraftsLimit)
}

// RefreshDashboard reloads the dashboard data. Only the latest issued
// refresh may replace the loaded drafts.
func (vm *ViewModel) RefreshDashboard(ctx context.Context) error {
	vm.mu.Lock()
	vm.seq++
	seq := vm.seq
	vm.mu.Unlock()

	drafts, err := vm.api.ListDrafts(ctx, constants.DashboardDraftsLimit)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if seq != vm.seq {
		vm.logger.Debug("discarding stale dashboard response", "seq", seq, "latest", vm.seq)
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}
	vm.drafts = drafts
	return nil
}

// Drafts returns the loaded dashboard data
func (vm *ViewModel) Drafts() []models.Draft {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	drafts := make([]models.Draft, len(vm.drafts))
	copy(drafts, vm.drafts)
	return drafts
}

// Dashboard recomputes the view from the loaded drafts and the current query
func (vm *ViewModel) Dashboard() dashboard.View {
	return dashboard.Build(vm.Drafts(), vm.Query, vm.clock.Now())
}

func (vm *ViewModel) Dispatch(ctx context.Context, action dashboard.Action) error {
	switch action.Kind {
	case dashboard.ActionLoad:
		draft, ok := vm.loadedDraft(action.DraftID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrDraftNotLoaded, action.DraftID)
		}
		vm.Mode = draft.Type
		vm.Text = draft.Content
		return nil
	case dashboard.ActionDelete:
		if _, err := vm.api.DeleteDraft(ctx, action.DraftID); err != nil {
			vm.logger.Error("failed to delete draft", "id", action.DraftID, "error", err.Error())
			return err
		}
		return vm.RefreshDashboard(ctx)
	}
	return fmt.Errorf("%w: %s", ErrUnknownAction, action.Kind)
}

func (vm *ViewModel) loadedDraft(id int64) (models.Draft, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for _, draft := range vm.drafts {
		if draft.ID == id {
			return draft, true
		}
	}
	return models.Draft{}, false
}

// Enhance rewrites the free text fields through the API. Keys missing from
// the reply, or returned empty, keep their current value. On failure the
// fields are left untouched.
func (vm *ViewModel) Enhance(ctx context.Context) error {
	fields := vm.Fields.Subset(models.EnhanceableFields)

	hasText := false
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			hasText = true
			break
		}
	}
	if !hasText {
		return ErrNothingToEnhance
	}

	enhanced, err := vm.api.Enhance(ctx, fields)
	if err != nil {
		vm.logger.Error("failed to enhance fields", "error", err.Error())
		return err
	}

	for _, name := range models.EnhanceableFields {
		if value := enhanced[name]; value != "" {
			vm.Fields.Set(name, value)
		}
	}
	vm.Preview()
	return nil
}

func (vm *ViewModel) EmailLink() string {
	return formatter.EmailLink(vm.Mode, vm.Text)
}

func (vm *ViewModel) SlackBlock() string {
	return formatter.SlackBlock(vm.Text)
}
