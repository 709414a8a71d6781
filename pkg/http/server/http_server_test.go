package server

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/http/server/middlewares"
	"statusdrafter/pkg/service"
	"statusdrafter/pkg/service/enhancer"
	"statusdrafter/pkg/test_helpers"
	"testing"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Changes *int64          `json:"changes"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

type testServer struct {
	handler  http.Handler
	provider *enhancer.MockProvider
}

func newTestServer(t *testing.T, staticDir string) *testServer {
	conn := test_helpers.NewMigratedTestDb(t)
	logger := test_helpers.NewTestLogger("http-server-test")
	configs := &config.StatusDrafterConfigurations{
		EnhanceTimeoutSeconds: 5,
		StaticDir:             staticDir,
	}
	provider := enhancer.NewMockProvider(t)
	serv := service.NewServiceWithConnection(logger, configs, conn, provider)

	return &testServer{
		handler:  NewRouter(logger, configs, serv),
		provider: provider,
	}
}

func (s *testServer) do(t *testing.T, method string, path string, body string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)

	res := envelope{}
	if recorder.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	}
	return recorder, res
}

func TestProjectsAndRolesEndpoints(t *testing.T) {
	s := newTestServer(t, "")

	recorder, res := s.do(t, http.MethodPost, "/api/projects", `{"name":"Website App"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", res.Message)
	assert.JSONEq(t, `{"id":1,"name":"Website App"}`, string(res.Data))
	assert.NotEmpty(t, recorder.Header().Get(middlewares.RequestIDHeader))

	recorder, res = s.do(t, http.MethodPost, "/api/projects", `{"name":"Website App"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, res.Error, "UNIQUE")

	recorder, res = s.do(t, http.MethodPost, "/api/roles", `{"name":"Backend","project_id":1}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":1,"project_id":1,"name":"Backend"}`, string(res.Data))

	recorder, res = s.do(t, http.MethodPost, "/api/roles", `{"name":"Ghost","project_id":42}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotEmpty(t, res.Error)

	_, res = s.do(t, http.MethodGet, "/api/projects", "")
	assert.JSONEq(t, `[{"id":1,"name":"Website App"}]`, string(res.Data))

	_, res = s.do(t, http.MethodGet, "/api/projects/1/roles", "")
	assert.JSONEq(t, `[{"id":1,"project_id":1,"name":"Backend"}]`, string(res.Data))

	recorder, res = s.do(t, http.MethodDelete, "/api/projects/1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "deleted", res.Message)
	assert.Nil(t, res.Changes)

	_, res = s.do(t, http.MethodGet, "/api/projects/1/roles", "")
	assert.JSONEq(t, `[]`, string(res.Data))

	recorder, res = s.do(t, http.MethodDelete, "/api/roles/77", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "deleted", res.Message)

	recorder, res = s.do(t, http.MethodDelete, "/api/projects/abc", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotEmpty(t, res.Error)

	recorder, res = s.do(t, http.MethodPost, "/api/projects", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NotEmpty(t, res.Error)
}

func TestDraftsEndpoints(t *testing.T) {
	s := newTestServer(t, "")

	_, _ = s.do(t, http.MethodPost, "/api/projects", `{"name":"Website App"}`)
	_, _ = s.do(t, http.MethodPost, "/api/roles", `{"name":"Backend","project_id":1}`)

	recorder, res := s.do(t, http.MethodPost, "/api/drafts", `{"type":"daily","content":"Task: Fix login bug","project_id":1,"role_id":1}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":1,"type":"daily","content":"Task: Fix login bug"}`, string(res.Data))

	recorder, res = s.do(t, http.MethodPost, "/api/drafts", `{"type":"weekly","content":"Highlight: shipped"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, res = s.do(t, http.MethodPost, "/api/drafts", `{"type":"monthly","content":"x"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, res.Error, "CHECK")

	_, res = s.do(t, http.MethodGet, "/api/drafts?limit=1", "")
	var drafts []map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Data, &drafts))
	assert.Len(t, drafts, 1)

	_, res = s.do(t, http.MethodGet, "/api/drafts", "")
	require.NoError(t, json.Unmarshal(res.Data, &drafts))
	require.Len(t, drafts, 2)
	assert.Equal(t, float64(2), drafts[0]["id"])
	assert.Equal(t, nil, drafts[0]["project_name"])
	assert.Equal(t, "Website App", drafts[1]["project_name"])
	assert.Equal(t, "Backend", drafts[1]["role_name"])
	assert.NotEmpty(t, drafts[1]["created_at"])

	recorder, res = s.do(t, http.MethodDelete, "/api/drafts/1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "deleted", res.Message)
	if assert.NotNil(t, res.Changes) {
		assert.Equal(t, int64(1), *res.Changes)
	}

	_, res = s.do(t, http.MethodDelete, "/api/drafts/1", "")
	if assert.NotNil(t, res.Changes) {
		assert.Equal(t, int64(0), *res.Changes)
	}
}

func TestEnhanceEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	recorder, res := s.do(t, http.MethodPost, "/api/enhance", `{"fields":"not an object"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, enhancer.MessageFieldsRequired, res.Error)

	recorder, res = s.do(t, http.MethodPost, "/api/enhance", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, enhancer.MessageFieldsRequired, res.Error)

	s.provider.On("Complete", mock.Anything, enhancer.SystemPrompt, mock.Anything).
		Return("```json\n{\"taskTitle\":\"Resolved login defect\"}\n```", nil).Once()

	recorder, _ = s.do(t, http.MethodPost, "/api/enhance", `{"fields":{"taskTitle":"fixed bug","blockers":""}}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"enhanced":{"taskTitle":"Resolved login defect"}}`, recorder.Body.String())

	s.provider.On("Complete", mock.Anything, enhancer.SystemPrompt, mock.Anything).
		Return("I cannot help with that", nil).Once()

	recorder, res = s.do(t, http.MethodPost, "/api/enhance", `{"fields":{"taskTitle":"fixed bug"}}`)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, enhancer.MessageEnhanceFailed, res.Error)
	assert.NotEmpty(t, res.Details)
}

func TestHealthcheckAndCORS(t *testing.T) {
	s := newTestServer(t, "")

	recorder, res := s.do(t, http.MethodGet, "/api/healthcheck", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(res.Data), `"status":"ok"`)
	assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))

	req := httptest.NewRequest(http.MethodOptions, "/api/drafts", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight := httptest.NewRecorder()
	s.handler.ServeHTTP(preflight, req)
	assert.Equal(t, "*", preflight.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>drafts</h1>"), 0600))

	s := newTestServer(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "<h1>drafts</h1>")
}
