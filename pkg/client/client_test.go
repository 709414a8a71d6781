package client

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/http/server"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/service"
	"statusdrafter/pkg/service/enhancer"
	"statusdrafter/pkg/test_helpers"
	"testing"
)

func newTestClient(t *testing.T) (*Client, *enhancer.MockProvider) {
	conn := test_helpers.NewMigratedTestDb(t)
	logger := test_helpers.NewTestLogger("client-test")
	configs := &config.StatusDrafterConfigurations{EnhanceTimeoutSeconds: 5}
	provider := enhancer.NewMockProvider(t)
	serv := service.NewServiceWithConnection(logger, configs, conn, provider)

	httpServer := httptest.NewServer(server.NewRouter(logger, configs, serv))
	t.Cleanup(httpServer.Close)

	return NewClient(httpServer.URL+"/", httpServer.Client()), provider
}

func TestClient_ProjectsAndRoles(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	project, err := c.CreateProject(ctx, "Website App")
	require.NoError(t, err)
	assert.Equal(t, &models.Project{ID: 1, Name: "Website App"}, project)

	_, err = c.CreateProject(ctx, "Website App")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Message, "UNIQUE")

	role, err := c.CreateRole(ctx, project.ID, "Backend")
	require.NoError(t, err)
	assert.Equal(t, &models.Role{ID: 1, ProjectID: 1, Name: "Backend"}, role)

	roles, err := c.ListRoles(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Role{*role}, roles)

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Project{*project}, projects)

	require.NoError(t, c.DeleteRole(ctx, role.ID))
	require.NoError(t, c.DeleteProject(ctx, project.ID))

	projects, err = c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestClient_Drafts(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateDraft(ctx, models.Draft{Type: models.DailyDraft, Content: "Task: Fix login bug"})
	require.NoError(t, err)
	assert.Equal(t, &models.CreatedDraft{ID: 1, Type: models.DailyDraft, Content: "Task: Fix login bug"}, created)

	_, err = c.CreateDraft(ctx, models.Draft{Type: models.WeeklyDraft, Content: "Highlight: shipped"})
	require.NoError(t, err)

	drafts, err := c.ListDrafts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, int64(2), drafts[0].ID)
	assert.False(t, drafts[0].CreatedAt.IsZero())

	changes, err := c.DeleteDraft(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = c.DeleteDraft(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)

	drafts, err = c.ListDrafts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestClient_Enhance(t *testing.T) {
	c, provider := newTestClient(t)
	ctx := context.Background()

	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"taskTitle":"Resolved login defect"}`, nil).Once()

	enhanced, err := c.Enhance(ctx, map[string]string{"taskTitle": "fixed bug", "blockers": ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"taskTitle": "Resolved login defect"}, enhanced)

	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("provider error (429): rate limited")).Once()

	_, err = c.Enhance(ctx, map[string]string{"taskTitle": "fixed bug"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, enhancer.MessageEnhanceFailed, apiErr.Message)
	assert.Contains(t, apiErr.Details, "rate limited")
}
