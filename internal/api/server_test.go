package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/config"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/alexanderramin/swimadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer starts an API over a freshly seeded in-memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	programs := repository.NewSQLiteProgramRepo(database)
	levels := repository.NewSQLiteLevelRepo(database)
	skills := repository.NewSQLiteSkillRepo(database)
	progress := repository.NewSQLiteProgressRepo(database)
	maps := repository.NewSQLiteLevelMapRepo(database)

	_, err := service.NewSeedService(programs, uow).SeedDemo(context.Background())
	require.NoError(t, err)

	srv, err := NewServer(Services{
		Programs:  service.NewProgramService(programs),
		Levels:    service.NewLevelService(levels, programs),
		Skills:    service.NewSkillService(skills, levels, uow),
		Progress:  service.NewProgressService(progress, skills),
		Maps:      service.NewLevelMapService(levels, skills, maps, uow, MetricsObserver{}),
		Dashboard: service.NewDashboardService(programs, levels, skills, progress),
	}, config.DefaultConfig(), nil)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "swimadmin_http_requests_total")
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"programs":2,"levels":3,"skills":3,"progress":3}`, string(body))
}

func TestProgramLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/programs", map[string]any{
		"name":        "Adult Beginners",
		"instructors": []string{"Sam Lee"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created domain.Program
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)

	resp, body = doJSON(t, http.MethodPut, ts.URL+"/api/programs/"+created.ID, map[string]any{"studentCount": 6})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var updated domain.Program
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Adult Beginners", updated.Name, "omitted fields keep their value")
	assert.Equal(t, 6, updated.StudentCount)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/programs/"+created.ID+"/levels", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/programs/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/programs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "not found")
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/programs", map[string]any{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/levels", map[string]any{"programId": "ghost", "name": "L"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/skills", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListsAreOrdered(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/programs/p1/levels", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var levels []domain.Level
	require.NoError(t, json.Unmarshal(body, &levels))
	require.Len(t, levels, 3)
	assert.Equal(t, "l1", levels[0].ID)
	assert.Equal(t, "l3", levels[2].ID)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/skills/s1/progress", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var points []domain.Progress
	require.NoError(t, json.Unmarshal(body, &points))
	require.Len(t, points, 2)
	assert.Equal(t, "pr1", points[0].ID)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/levels/ghost/skills", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSkillSweepsMap(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/skills/s2", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/levels/l1/map", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got mapResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got.Map.Nodes, 2)
	assert.Empty(t, got.Map.Connections, "both edges touched the removed skill's node")
}

func TestProgressUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPut, ts.URL+"/api/progress/pr3", map[string]any{"pointValue": 7})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"pointValue":7`)
	assert.Contains(t, string(body), "Blows small bubbles")

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/progress/pr3", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/progress/pr3", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
