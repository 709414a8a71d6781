package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/models"
	"strings"
)

// APIError is a non 2xx reply from the server
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Changes *int64          `json:"changes"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

type createDraftRequest struct {
	Type      models.DraftType `json:"type"`
	Content   string           `json:"content"`
	ProjectID *int64           `json:"project_id,omitempty"`
	RoleID    *int64           `json:"role_id,omitempty"`
}

type enhanceRequest struct {
	Fields map[string]string `json:"fields"`
}

type enhanceResponse struct {
	Enhanced map[string]string `json:"enhanced"`
}

// Client talks to the drafts REST API
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + constants.APIBase,
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}) (*envelope, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	res := &envelope{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, res); err != nil && resp.StatusCode < 300 {
			return nil, nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		message := res.Error
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		return nil, nil, &APIError{Status: resp.StatusCode, Message: message, Details: res.Details}
	}

	return res, raw, nil
}

func (c *Client) data(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	res, _, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}

// ListDrafts returns the newest drafts, limit <= 0 leaves the server default
func (c *Client) ListDrafts(ctx context.Context, limit int64) ([]models.Draft, error) {
	path := "/drafts"
	if limit > 0 {
		path = fmt.Sprintf("/drafts?limit=%d", limit)
	}
	drafts := []models.Draft{}
	if err := c.data(ctx, http.MethodGet, path, nil, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (c *Client) CreateDraft(ctx context.Context, draft models.Draft) (*models.CreatedDraft, error) {
	created := &models.CreatedDraft{}
	err := c.data(ctx, http.MethodPost, "/drafts", createDraftRequest{
		Type:      draft.Type,
		Content:   draft.Content,
		ProjectID: draft.ProjectID,
		RoleID:    draft.RoleID,
	}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteDraft returns the number of deleted drafts
func (c *Client) DeleteDraft(ctx context.Context, id int64) (int64, error) {
	res, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/drafts/%d", id), nil)
	if err != nil {
		return 0, err
	}
	if res.Changes == nil {
		return 0, nil
	}
	return *res.Changes, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := c.data(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	project := &models.Project{}
	if err := c.data(ctx, http.MethodPost, "/projects", models.Project{Name: name}, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	_, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	return err
}

func (c *Client) ListRoles(ctx context.Context, projectID int64) ([]models.Role, error) {
	roles := []models.Role{}
	if err := c.data(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/roles", projectID), nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) CreateRole(ctx context.Context, projectID int64, name string) (*models.Role, error) {
	role := &models.Role{}
	if err := c.data(ctx, http.MethodPost, "/roles", models.Role{ProjectID: projectID, Name: name}, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	_, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil)
	return err
}

// Enhance sends fields for rewriting and returns the rewritten subset
func (c *Client) Enhance(ctx context.Context, fields map[string]string) (map[string]string, error) {
	_, raw, err := c.do(ctx, http.MethodPost, "/enhance", enhanceRequest{Fields: fields})
	if err != nil {
		return nil, err
	}
	res := enhanceResponse{}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode enhanced fields: %w", err)
	}
	if res.Enhanced == nil {
		return map[string]string{}, nil
	}
	return res.Enhanced, nil
}
