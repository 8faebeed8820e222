package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase.dev/internal/config"
	"showcase.dev/internal/htmx"
	"showcase.dev/internal/metrics"
	"showcase.dev/internal/models"
	"showcase.dev/internal/views"
)

func testSection() *models.Section {
	return &models.Section{
		Title:       "Featured Work",
		Description: "Selected projects",
		Projects: []models.Project{
			{
				ID: "notes", Title: "Notes", Description: "A notes app",
				Image: "https://img.example.com/notes.png", Tags: []string{"go"},
				GitHub: "https://github.com/example/notes",
				WebApp: "https://notes.example.com", APK: "https://example.com/notes.apk",
			},
			{
				ID: "runner", Title: "Runner", Description: "Fitness tracker",
				Image: "https://img.example.com/runner.png",
				Video: "https://drive.google.com/file/d/run/view?usp=sharing",
			},
		},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	return SetupRoutes(&config.Config{}, testSection(), m), m
}

func do(h http.Handler, method, target string, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if hx {
		req.Header.Set(htmx.RequestHeaderKey, "true")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/api/health", false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestListProjects(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/api/projects", false)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "notes", got[0].ID)
	assert.Equal(t, "runner", got[1].ID)
}

func TestGetSection(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/api/section", false)

	require.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		Anchor   string           `json:"anchor"`
		Title    string           `json:"title"`
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "featured-work", got.Anchor)
	assert.Equal(t, "Featured Work", got.Title)
	assert.Len(t, got.Projects, 2)
}

func TestGetProject_Detail(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/api/projects/runner", false)

	require.Equal(t, http.StatusOK, rr.Code)
	var got struct {
		ID      string `json:"id"`
		Anchor  string `json:"anchor"`
		Media   struct {
			Kind string `json:"kind"`
			Src  string `json:"src"`
		} `json:"media"`
		Actions struct {
			Kind    string `json:"kind"`
			Primary struct {
				Label string `json:"label"`
			} `json:"primary"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "runner", got.ID)
	assert.Equal(t, "featured-work", got.Anchor)
	assert.Equal(t, "video", got.Media.Kind)
	assert.Equal(t, "https://drive.google.com/file/d/run/preview", got.Media.Src)
	assert.Equal(t, "demo", got.Actions.Kind)
	assert.Equal(t, "Watch Full Demo", got.Actions.Primary.Label)
}

func TestGetProject_NotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/api/projects/missing", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rr.Body.String())
}

func TestIndex_RendersClosedPage(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/", false)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="featured-work"`)
	assert.Equal(t, 2, strings.Count(body, "data-project-id="))
	assert.NotContains(t, body, `id="project-modal"`)
}

func TestIndex_DeepLinkOpensModal(t *testing.T) {
	h, m := newTestRouter(t)

	rr := do(h, http.MethodGet, "/?project=notes", false)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `id="project-modal"`)
	assert.Contains(t, body, "View Live")
	assert.NotContains(t, body, "Download APK")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModalOpensTotal.WithLabelValues("notes")))
}

func TestIndex_UnknownDeepLinkStaysClosed(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/?project=missing", false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), `id="project-modal"`)
}

func TestOpenModal_HTMXReturnsFragment(t *testing.T) {
	h, m := newTestRouter(t)

	rr := do(h, http.MethodGet, "/work/projects/runner", true)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<div id="project-modal"`))
	assert.Contains(t, body, "Runner")
	assert.Contains(t, body, "Fitness tracker")
	assert.Contains(t, body, `src="https://drive.google.com/file/d/run/preview"`)
	assert.Contains(t, body, "Watch Full Demo")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ModalOpensTotal.WithLabelValues("runner")))
}

func TestOpenModal_NonHTMXReturnsFullPage(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/work/projects/notes", false)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="project-modal"`)
}

func TestOpenModal_NotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/work/projects/missing", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCloseModal(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(h, http.MethodGet, "/work/close", true)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, strings.TrimSpace(rr.Body.String()))

	rr = do(h, http.MethodGet, "/work/close", false)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/#featured-work", rr.Header().Get("Location"))
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)
	do(h, http.MethodGet, "/api/health", false)

	rr := do(h, http.MethodGet, "/metrics", false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `showcase_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	h := SetupRoutes(&config.Config{}, testSection(), nil)

	rr := do(h, http.MethodGet, "/metrics", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEmptySection(t *testing.T) {
	h := SetupRoutes(&config.Config{}, nil, nil)

	rr := do(h, http.MethodGet, "/", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "data-project-id=")

	rr = do(h, http.MethodGet, "/api/projects", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestOpenModal_EscapedIDs(t *testing.T) {
	section := testSection()
	section.Projects = append(section.Projects,
		models.Project{ID: "tools/cli", Title: "CLI Tools", Image: "https://img.example.com/cli.png"},
		models.Project{ID: "side project", Title: "Side Project", Image: "https://img.example.com/side.png"},
		models.Project{ID: "100%", Title: "Percent", Image: "https://img.example.com/pct.png"},
	)
	h := SetupRoutes(&config.Config{}, section, nil)

	for _, p := range section.Projects[2:] {
		rr := do(h, http.MethodGet, views.ModalPath(p.ID), true)
		require.Equal(t, http.StatusOK, rr.Code, p.ID)
		assert.Contains(t, rr.Body.String(), p.Title, p.ID)
	}
}

func TestGetProject_EscapedID(t *testing.T) {
	section := testSection()
	section.Projects = append(section.Projects,
		models.Project{ID: "tools/cli", Title: "CLI Tools", Image: "https://img.example.com/cli.png"},
	)
	h := SetupRoutes(&config.Config{}, section, nil)

	rr := do(h, http.MethodGet, "/api/projects/"+url.PathEscape("tools/cli"), false)

	require.Equal(t, http.StatusOK, rr.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "tools/cli", got["id"])
}
