package repository

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator/internal/app/filter"
)

const minimalRoles = `
roles:
  - id: lp
    label: Lehrperson
systemCategories: []
policyRules: []
processes: []
`

const minimalProcurement = `
procurementFlows:
  - id: lehrperson
    title: Start bei Lehrpersonen
    steps:
      - title: Lizenz-Navigator prüfen
        actor: Lehrperson
`

func catalogFS(tools, roles, procurement string) fstest.MapFS {
	return fstest.MapFS{
		toolsFile:       &fstest.MapFile{Data: []byte(tools)},
		rolesFile:       &fstest.MapFile{Data: []byte(roles)},
		procurementFile: &fstest.MapFile{Data: []byte(procurement)},
	}
}

func TestNew_EmbeddedCatalog(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	tools := repo.Tools()
	require.NotEmpty(t, tools)
	seen := map[string]bool{}
	for _, tool := range tools {
		assert.False(t, seen[tool.ID], "duplicate id %s", tool.ID)
		seen[tool.ID] = true
	}

	padlet, err := repo.ToolByID("padlet")
	require.NoError(t, err)
	assert.Equal(t, "Padlet", padlet.Name)
	assert.Contains(t, padlet.Functions, "Pinnwände")

	quizlet, err := repo.ToolByID("quizlet")
	require.NoError(t, err)
	assert.Equal(t, filter.LimitedSchoolLicense, filter.ClassifyLicense(quizlet.License))

	assert.Len(t, repo.Roles(), 7)
	assert.Len(t, repo.ProcurementFlows(), 3)
	assert.NotEmpty(t, repo.PolicyRules())
	assert.NotEmpty(t, repo.Processes())
}

func TestNew_EmbeddedCatalogPinnwSearch(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	got := filter.Apply(repo.Tools(), filter.State{Search: "pinnw"})
	names := make([]string, 0, len(got))
	for _, tool := range got {
		names = append(names, tool.Name)
	}
	assert.Contains(t, names, "Padlet")
}

func TestToolByID_NotFound(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	_, err = repo.ToolByID("gibt-es-nicht")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_DuplicateToolID(t *testing.T) {
	tools := `
tools:
  - {id: padlet, name: Padlet, lizenz: Einzellizenz BBW}
  - {id: padlet, name: Padlet 2, lizenz: Kostenlos}
`
	_, err := Load(catalogFS(tools, minimalRoles, minimalProcurement))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate tool id "padlet"`)
}

func TestLoad_MissingName(t *testing.T) {
	tools := `
tools:
  - {id: padlet, lizenz: Einzellizenz BBW}
`
	_, err := Load(catalogFS(tools, minimalRoles, minimalProcurement))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate tools.yaml")
}

func TestLoad_UnknownField(t *testing.T) {
	tools := `
tools:
  - {id: padlet, name: Padlet, lizenz: Kostenlos, preis: 12}
`
	_, err := Load(catalogFS(tools, minimalRoles, minimalProcurement))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tools.yaml")
}

func TestLoad_MatrixUnknownRole(t *testing.T) {
	tools := `
tools:
  - {id: padlet, name: Padlet, lizenz: Kostenlos}
`
	roles := `
roles:
  - id: lp
    label: Lehrperson
systemCategories:
  - id: openolat
    title: OpenOlat
    systems:
      - name: Kursbereich
        access: {lp: Lesen, hauswart: Admin}
`
	_, err := Load(catalogFS(tools, roles, minimalProcurement))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "hauswart"`)
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := catalogFS("tools: []", minimalRoles, minimalProcurement)
	delete(fsys, procurementFile)
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read procurement.yaml")
}

func TestAccessForRole(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	access, err := repo.AccessForRole("lernlounge")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	for _, a := range access {
		assert.NotEqual(t, "–", a.Level)
		assert.Equal(t, "lerntechnologien", a.CategoryID)
	}

	var chatgpt SystemAccess
	for _, a := range access {
		if a.System == "ChatGPT-Konto" {
			chatgpt = a
		}
	}
	assert.Equal(t, "Ausleihe", chatgpt.Level)

	_, err = repo.AccessForRole("hauswart")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProcurementFlow(t *testing.T) {
	repo, err := New()
	require.NoError(t, err)

	flow, err := repo.ProcurementFlow("steuergruppe")
	require.NoError(t, err)
	assert.Len(t, flow.Steps, 4)

	_, err = repo.ProcurementFlow("unbekannt")
	assert.ErrorIs(t, err, ErrNotFound)
}
