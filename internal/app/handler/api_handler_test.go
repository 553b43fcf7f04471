package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator/internal/app/dto"
	"navigator/internal/app/filter"
)

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func (e *testEnv) postJSON(target string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAPI_GetTools_NoFilter(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/api/tools")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ToolListResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, len(env.repo.Tools()), resp.Total)
	assert.Equal(t, resp.Total, resp.Count)
	assert.Empty(t, resp.Labels)
	assert.Equal(t, env.repo.Tools()[0].ID, resp.Tools[0].ID)
}

func TestAPI_GetTools_Filtered(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/api/tools?ki=true&lernende=true&q=a")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ToolListResponse
	decodeJSON(t, w, &resp)
	want := filter.Apply(env.repo.Tools(), filter.State{Search: "a", AI: filter.Yes, Students: filter.Yes})
	assert.Equal(t, len(want), resp.Count)
	assert.Equal(t, []string{"Mit KI", "Lernende", `"a"`}, resp.Labels)
	for _, tool := range resp.Tools {
		assert.True(t, tool.HasAI)
		assert.True(t, tool.ForStudents)
	}
}

func TestAPI_GetTools_EmptyResultIsList(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/api/tools?q=zzzzzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tools":[]`)
}

func TestAPI_GetTools_BadQuery(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/tools?ki=maybe",
		"/api/tools?lernende=vielleicht",
		"/api/tools?lizenz=Gratis",
		"/api/tools?q=" + strings.Repeat("a", filter.MaxSearchLength+1),
		"/api/tools?typ=" + strings.Repeat("a", filter.MaxToolTypeLength+1),
	} {
		w := env.get(target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var resp dto.ErrorResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "fail", resp.Status)
	}
}

func TestAPI_GetTool(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/tools/padlet")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Padlet"`)

	w = env.get("/api/tools/unbekannt")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_GetFilters(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/api/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FiltersResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, filter.LicenseCategories(), resp.LicenseCategories)
	assert.Equal(t, filter.ToolTypes(env.repo.Tools()), resp.ToolTypes)
	assert.Equal(t, len(env.repo.Tools()), resp.Stats.Total)
}

func TestAPI_ToggleFilter(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON("/api/filters/toggle", dto.ToggleRequest{Key: "ki", Value: "true"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ToggleResponse
	decodeJSON(t, w, &resp)
	require.NotNil(t, resp.State.AI)
	assert.True(t, *resp.State.AI)
	assert.Equal(t, []string{"Mit KI"}, resp.Labels)
	assert.True(t, resp.Active)
	assert.Equal(t, "?ki=true", resp.Query)

	// Same value again restores the original state.
	w = env.postJSON("/api/filters/toggle", dto.ToggleRequest{State: resp.State, Key: "ki", Value: "true"})
	require.Equal(t, http.StatusOK, w.Code)
	var back dto.ToggleResponse
	decodeJSON(t, w, &back)
	assert.Nil(t, back.State.AI)
	assert.False(t, back.Active)
	assert.Empty(t, back.Query)
}

func TestAPI_ToggleFilter_SearchMatchesQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON("/api/filters/toggle", dto.ToggleRequest{Key: "search", Value: "  pinnw "})
	require.Equal(t, http.StatusOK, w.Code)
	var toggled dto.ToggleResponse
	decodeJSON(t, w, &toggled)
	assert.Equal(t, "?q=pinnw", toggled.Query)

	w = env.get("/api/tools" + toggled.Query)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.ToolListResponse
	decodeJSON(t, w, &list)
	assert.Equal(t, toggled.Labels, list.Labels)

	w = env.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `filter_type="search"`)
}

func TestAPI_ToggleFilter_Invalid(t *testing.T) {
	env := newTestEnv(t)

	cases := []dto.ToggleRequest{
		{Key: ""},
		{Key: "farbe", Value: "rot"},
		{Key: "lizenzKategorie", Value: "Gratis"},
		{Key: "ki", Value: "maybe"},
		{State: dto.FilterStateDTO{License: "Gratis"}, Key: "lp"},
	}
	for _, req := range cases {
		w := env.postJSON("/api/filters/toggle", req)
		assert.Equal(t, http.StatusBadRequest, w.Code, req.Key)
	}
}

func TestAPI_Access(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/roles")
	require.Equal(t, http.StatusOK, w.Code)
	var roles dto.RoleListResponse
	decodeJSON(t, w, &roles)
	assert.Equal(t, len(env.repo.Roles()), roles.Total)

	w = env.get("/api/roles/lernlounge/access")
	require.Equal(t, http.StatusOK, w.Code)
	var access dto.RoleAccessResponse
	decodeJSON(t, w, &access)
	assert.Equal(t, "lernlounge", access.Role.ID)
	assert.NotEmpty(t, access.Systems)

	assert.Equal(t, http.StatusNotFound, env.get("/api/roles/hausmeister/access").Code)

	for _, target := range []string{"/api/systems", "/api/policies", "/api/processes"} {
		w := env.get(target)
		require.Equal(t, http.StatusOK, w.Code, target)
		var resp dto.SuccessResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "success", resp.Status)
		assert.NotNil(t, resp.Data, target)
	}
}

func TestAPI_Procurement(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/procurement")
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.ProcurementListResponse
	decodeJSON(t, w, &list)
	assert.Equal(t, 3, list.Total)

	assert.Equal(t, http.StatusOK, env.get("/api/procurement/lehrperson").Code)
	assert.Equal(t, http.StatusNotFound, env.get("/api/procurement/unbekannt").Code)
}

func TestAPI_ExportAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/api/export?lizenz=Kantonslizenz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get(ReportURLHeader))

	env.postJSON("/api/filters/toggle", dto.ToggleRequest{Key: "lp"})

	w = env.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "navigator_reports_exported_total 1")
	assert.Contains(t, body, `navigator_filter_applied_total{filter_type="lp"} 1`)
}

func TestAPI_Ping(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
